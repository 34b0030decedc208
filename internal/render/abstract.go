package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

// ShapeKind is a shape drawn by the abstract collage.
type ShapeKind string

const (
	ShapeEllipse   ShapeKind = "ellipse"
	ShapeRectangle ShapeKind = "rectangle"
	ShapePolygon   ShapeKind = "polygon"
)

// ShapeKinds lists the collage shapes in selection order.
var ShapeKinds = []ShapeKind{ShapeEllipse, ShapeRectangle, ShapePolygon}

const (
	minCollageShapes = 10
	maxCollageShapes = 25
	minPolygonPoints = 3
	maxPolygonPoints = 6
)

// AbstractRenderer paints opaque random shapes on a white canvas.
type AbstractRenderer struct {
	src    Source
	logger hclog.Logger
}

// NewAbstractRenderer creates an AbstractRenderer.
func NewAbstractRenderer(src Source, logger hclog.Logger) *AbstractRenderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AbstractRenderer{src: src, logger: logger}
}

// Render paints 10 to 25 shapes, each an ellipse, rectangle or polygon
// filled with a palette colour. Shapes are hard-edged and later ones
// overwrite earlier ones, so every pixel is white or a palette colour.
// It returns the image and the number of shapes drawn.
func (a *AbstractRenderer) Render(width, height int, colours []colour.RGB) (*image.RGBA, int, error) {
	if width <= 0 || height <= 0 {
		return nil, 0, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if len(colours) == 0 {
		return nil, 0, fmt.Errorf("abstract collage needs at least one colour")
	}

	img := NewCanvas(width, height, color.White)
	n := between(a.src, minCollageShapes, maxCollageShapes)
	a.logger.Debug("rendering abstract collage", "shapes", n)

	for i := 0; i < n; i++ {
		kind := pick(a.src, ShapeKinds)
		fill := pick(a.src, colours)

		switch kind {
		case ShapeEllipse:
			x1, y1, x2, y2 := cornerBox(a.src, width, height)
			fillEllipse(fillSolid, img, x1, y1, x2, y2, fill)
		case ShapeRectangle:
			x1, y1, x2, y2 := cornerBox(a.src, width, height)
			fillRect(img, x1, y1, x2, y2, fill)
		case ShapePolygon:
			pts := make([]image.Point, between(a.src, minPolygonPoints, maxPolygonPoints))
			for j := range pts {
				pts[j] = image.Pt(between(a.src, 0, width), between(a.src, 0, height))
			}
			fillPolygon(fillSolid, img, pts, fill)
		}
	}
	return img, n, nil
}
