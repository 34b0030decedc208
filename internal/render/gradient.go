package render

import (
	"fmt"
	"image"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

// GradientKind selects how the blend ratio varies across the canvas.
type GradientKind string

const (
	// GradientHorizontal blends left to right, ratio x/width.
	GradientHorizontal GradientKind = "horizontal"
	// GradientVertical blends top to bottom, ratio y/height.
	GradientVertical GradientKind = "vertical"
	// GradientDiagonal blends along x+y, ratio (x+y)/(width+height).
	GradientDiagonal GradientKind = "diagonal"
	// GradientRadial blends outward from the centre to the corners.
	GradientRadial GradientKind = "radial"
)

// GradientKinds lists every gradient kind in selection order.
var GradientKinds = []GradientKind{GradientHorizontal, GradientVertical, GradientDiagonal, GradientRadial}

// GradientRenderer paints two-colour gradients of a randomly chosen kind.
type GradientRenderer struct {
	src    Source
	logger hclog.Logger
}

// NewGradientRenderer creates a GradientRenderer.
func NewGradientRenderer(src Source, logger hclog.Logger) *GradientRenderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &GradientRenderer{src: src, logger: logger}
}

// Render chooses a gradient kind and paints from -> to across a new canvas.
func (g *GradientRenderer) Render(width, height int, from, to colour.RGB) (*image.RGBA, GradientKind, error) {
	kind := pick(g.src, GradientKinds)
	g.logger.Debug("rendering gradient", "kind", kind, "width", width, "height", height)
	img, err := Gradient(kind, width, height, from, to)
	return img, kind, err
}

// Gradient paints a gradient of the given kind. It is deterministic.
func Gradient(kind GradientKind, width, height int, from, to colour.RGB) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	var ratio func(x, y int) float64
	switch kind {
	case GradientHorizontal:
		ratio = func(x, _ int) float64 { return float64(x) / float64(width) }
	case GradientVertical:
		ratio = func(_, y int) float64 { return float64(y) / float64(height) }
	case GradientDiagonal:
		ratio = func(x, y int) float64 { return float64(x+y) / float64(width+height) }
	case GradientRadial:
		cx, cy := width/2, height/2
		maxDist := math.Hypot(float64(cx), float64(cy))
		ratio = func(x, y int) float64 {
			if maxDist == 0 {
				return 0
			}
			return math.Min(math.Hypot(float64(x-cx), float64(y-cy))/maxDist, 1.0)
		}
	default:
		return nil, fmt.Errorf("unknown gradient kind: %s", kind)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			c := colour.Blend(from, to, ratio(x, y))
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xff
		}
	}
	return img, nil
}
