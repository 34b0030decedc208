package theme

import "strings"

// Intn is the slice of a random source the detector needs.
type Intn interface {
	Intn(n int) int
}

// Detection is the outcome of scoring a prompt.
type Detection struct {
	Theme Name
	// Score is the number of matched keywords of the winning theme.
	Score int
	// Random reports that no keyword matched and the theme was drawn at random.
	Random bool
}

// Detector scores prompts against a catalog.
type Detector struct {
	catalog *Catalog
	rng     Intn
}

// NewDetector creates a detector over catalog drawing fallbacks from rng.
func NewDetector(catalog *Catalog, rng Intn) *Detector {
	return &Detector{catalog: catalog, rng: rng}
}

// Score counts how many keywords of t occur as substrings of the lowercased prompt.
func Score(t Theme, prompt string) int {
	lower := strings.ToLower(prompt)
	n := 0
	for _, k := range t.Keywords {
		if strings.Contains(lower, k) {
			n++
		}
	}
	return n
}

// Detect returns the highest scoring theme. Ties go to the theme that
// appears first in catalog order. With no match at all the theme is
// chosen uniformly at random.
func (d *Detector) Detect(prompt string) Detection {
	best := Detection{}
	for _, t := range d.catalog.themes {
		if s := Score(t, prompt); s > best.Score {
			best = Detection{Theme: t.Name, Score: s}
		}
	}
	if best.Score > 0 {
		return best
	}

	pick := d.catalog.themes[d.rng.Intn(len(d.catalog.themes))]
	return Detection{Theme: pick.Name, Random: true}
}
