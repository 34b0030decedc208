package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

// PatternKind is the shape family drawn by the geometric overlay.
type PatternKind string

const (
	PatternCircles    PatternKind = "circles"
	PatternRectangles PatternKind = "rectangles"
	PatternTriangles  PatternKind = "triangles"
	PatternLines      PatternKind = "lines"
)

// PatternKinds lists the overlay kinds in selection order.
var PatternKinds = []PatternKind{PatternCircles, PatternRectangles, PatternTriangles, PatternLines}

// Overlay shape parameters.
const (
	minOverlayShapes = 5
	maxOverlayShapes = 15
	minOverlayAlpha  = 50
	maxOverlayAlpha  = 150
	minCircleRadius  = 20
	maxCircleRadius  = 100
	minTriangleSize  = 20
	maxTriangleSize  = 100
	minLineWidth     = 2
	maxLineWidth     = 12
)

// Overlay describes what a geometric pass drew.
type Overlay struct {
	Kind   PatternKind
	Shapes int
}

// GeometricRenderer composites semi-transparent shapes over an image.
type GeometricRenderer struct {
	src    Source
	logger hclog.Logger
}

// NewGeometricRenderer creates a GeometricRenderer.
func NewGeometricRenderer(src Source, logger hclog.Logger) *GeometricRenderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &GeometricRenderer{src: src, logger: logger}
}

// Render copies base and composites 5 to 15 shapes of one kind over it.
// Each shape is blended with src-over onto the result of the previous
// ones. The returned image is opaque.
func (g *GeometricRenderer) Render(base image.Image, colours []colour.RGB) (*image.RGBA, Overlay, error) {
	if base == nil {
		return nil, Overlay{}, fmt.Errorf("base image is required")
	}
	if len(colours) == 0 {
		return nil, Overlay{}, fmt.Errorf("geometric overlay needs at least one colour")
	}
	b := base.Bounds()
	if b.Empty() {
		return nil, Overlay{}, fmt.Errorf("base image is empty")
	}

	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), base, b.Min, draw.Src)

	ov := Overlay{
		Kind:   pick(g.src, PatternKinds),
		Shapes: between(g.src, minOverlayShapes, maxOverlayShapes),
	}
	g.logger.Debug("rendering geometric overlay", "kind", ov.Kind, "shapes", ov.Shapes)

	w, h := b.Dx(), b.Dy()
	for i := 0; i < ov.Shapes; i++ {
		c := pick(g.src, colours)
		fill := c.WithAlpha(uint8(between(g.src, minOverlayAlpha, maxOverlayAlpha)))

		switch ov.Kind {
		case PatternCircles:
			x, y := between(g.src, 0, w), between(g.src, 0, h)
			r := between(g.src, minCircleRadius, maxCircleRadius)
			fillEllipse(fillPath, img, x-r, y-r, x+r, y+r, fill)
		case PatternRectangles:
			x1, y1, x2, y2 := cornerBox(g.src, w, h)
			fillRect(img, x1, y1, x2, y2, fill)
		case PatternTriangles:
			x, y := between(g.src, 0, w), between(g.src, 0, h)
			s := between(g.src, minTriangleSize, maxTriangleSize)
			pts := make([]image.Point, 3)
			for j := range pts {
				pts[j] = image.Pt(between(g.src, x-s, x+s), between(g.src, y-s, y+s))
			}
			fillPolygon(fillPath, img, pts, fill)
		case PatternLines:
			p0 := image.Pt(between(g.src, 0, w), between(g.src, 0, h))
			p1 := image.Pt(between(g.src, 0, w), between(g.src, 0, h))
			strokeLine(img, p0, p1, float64(between(g.src, minLineWidth, maxLineWidth)), fill)
		}
	}

	flatten(img)
	return img, ov, nil
}

// cornerBox returns a box whose first corner lies in the upper-left
// quadrant and whose second corner is never above or left of the first.
func cornerBox(src Source, w, h int) (x1, y1, x2, y2 int) {
	x1 = between(src, 0, w/2)
	y1 = between(src, 0, h/2)
	x2 = between(src, x1, w)
	y2 = between(src, y1, h)
	return x1, y1, x2, y2
}
