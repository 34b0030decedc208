// Package effect applies a single whole-image post-processing filter to
// generated pictures.
package effect

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"
)

// Name identifies a filter.
type Name string

const (
	Blur        Name = "blur"
	Sharpen     Name = "sharpen"
	Emboss      Name = "emboss"
	EdgeEnhance Name = "edge_enhance"
	Smooth      Name = "smooth"

	// Random picks one of All uniformly. It is the default.
	Random Name = "random"
	// None disables the effect stage.
	None Name = "none"
)

// All lists the concrete filters in selection order.
var All = []Name{Blur, Sharpen, Emboss, EdgeEnhance, Smooth}

// blurSigma is the Gaussian standard deviation used by Blur.
const blurSigma = 1.0

var (
	sharpenKernel = [9]float64{
		-2, -2, -2,
		-2, 32, -2,
		-2, -2, -2,
	}
	// Convolve3x3 weights row 0 against the row above, so emboss is stored
	// bottom-up: each pixel minus its lower-left neighbour.
	embossKernel = [9]float64{
		0, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	}
	edgeEnhanceKernel = [9]float64{
		-1, -1, -1,
		-1, 10, -1,
		-1, -1, -1,
	}
	smoothKernel = [9]float64{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	}
)

// ParseName converts a string to a Name, accepting the concrete filters
// plus random and none. Hyphens are accepted in place of underscores.
func ParseName(s string) (Name, error) {
	n := Name(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if n == "" {
		return Random, nil
	}
	if n == Random || n == None || slices.Contains(All, n) {
		return n, nil
	}
	return "", fmt.Errorf("unknown effect: %s (valid: %s, random, none)", s, joinNames(All))
}

func joinNames(names []Name) string {
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}

// Intn is the random source used to choose a filter.
type Intn interface {
	Intn(n int) int
}

// Processor applies effects, choosing one at random when asked to.
type Processor struct {
	src    Intn
	logger hclog.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(src Intn, logger hclog.Logger) *Processor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Processor{src: src, logger: logger}
}

// Apply resolves choice and runs it over img. Random (or empty) picks from
// All; None returns img untouched. The name of the effect actually used
// is returned.
func (p *Processor) Apply(img image.Image, choice Name) (image.Image, Name, error) {
	switch choice {
	case None:
		if img == nil {
			return nil, None, fmt.Errorf("image is required")
		}
		return img, None, nil
	case Random, "":
		choice = All[p.src.Intn(len(All))]
	}

	p.logger.Debug("applying effect", "effect", choice)
	out, err := Run(choice, img)
	if err != nil {
		return nil, choice, err
	}
	return out, choice, nil
}

// Run applies the named filter once to the whole image.
func Run(name Name, img image.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("image is required")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("cannot apply %s to an empty image", name)
	}

	switch name {
	case Blur:
		return imaging.Blur(img, blurSigma), nil
	case Sharpen:
		return imaging.Convolve3x3(img, sharpenKernel, &imaging.ConvolveOptions{Normalize: true}), nil
	case Emboss:
		return imaging.Convolve3x3(img, embossKernel, &imaging.ConvolveOptions{Bias: 128}), nil
	case EdgeEnhance:
		return imaging.Convolve3x3(img, edgeEnhanceKernel, &imaging.ConvolveOptions{Normalize: true}), nil
	case Smooth:
		return imaging.Convolve3x3(img, smoothKernel, &imaging.ConvolveOptions{Normalize: true}), nil
	default:
		return nil, fmt.Errorf("unknown effect: %s", name)
	}
}
