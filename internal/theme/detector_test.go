package theme

import (
	"math/rand"
	"testing"
)

func TestDetectKeywordOnlyPrompts(t *testing.T) {
	tests := []struct {
		prompt string
		want   Name
	}{
		{"garden leaf", Nature},
		{"Beach WAVE", Ocean},
		{"golden dawn", Sunset},
		{"galaxy nebula", Space},
		{"jungle wood", Forest},
		{"urban building", City},
		{"flame burning", Fire},
		{"frozen winter", Ice},
		{"wizard fantasy", Magic},
		{"neon cyberpunk", Retro},
	}

	d := NewDetector(Default(), rand.New(rand.NewSource(1)))
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			got := d.Detect(tt.prompt)
			if got.Theme != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.prompt, got.Theme, tt.want)
			}
			if got.Random || got.Score != 2 {
				t.Errorf("Detect(%q) = %+v, want two keyword matches", tt.prompt, got)
			}
		})
	}
}

func TestDetectTieGoesToCatalogOrder(t *testing.T) {
	d := NewDetector(Default(), rand.New(rand.NewSource(1)))

	// ocean and sunset each score one; ocean comes first.
	if got := d.Detect("Ocean sunset").Theme; got != Ocean {
		t.Errorf("Detect(Ocean sunset) = %s, want ocean", got)
	}
	// "tree" is a keyword of both nature and forest.
	if got := d.Detect("a tree").Theme; got != Nature {
		t.Errorf("Detect(a tree) = %s, want nature", got)
	}
	// the higher score still wins regardless of order.
	if got := d.Detect("tree in a green jungle").Theme; got != Forest {
		t.Errorf("Detect(tree in a green jungle) = %s, want forest", got)
	}
}

func TestDetectNoMatchCoversCatalog(t *testing.T) {
	d := NewDetector(Default(), rand.New(rand.NewSource(42)))
	seen := make(map[Name]int)
	for i := 0; i < 1000; i++ {
		got := d.Detect("qqq zzz")
		if !got.Random {
			t.Fatalf("Detect() = %+v, want random pick", got)
		}
		seen[got.Theme]++
	}
	for _, name := range Default().Names() {
		if seen[name] == 0 {
			t.Errorf("theme %s never chosen in 1000 draws", name)
		}
	}
}

func TestScore(t *testing.T) {
	th, _ := Default().Lookup(City)
	if got := Score(th, "URBAN street with a skyscraper"); got != 3 {
		t.Errorf("Score() = %d, want 3", got)
	}
}
