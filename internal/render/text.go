package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Anchor is where the caption is placed.
type Anchor string

const (
	AnchorTop    Anchor = "top-center"
	AnchorBottom Anchor = "bottom-center"
	AnchorLeft   Anchor = "left-center"
	AnchorRight  Anchor = "right-center"
)

// Anchors lists caption placements in selection order.
var Anchors = []Anchor{AnchorTop, AnchorBottom, AnchorLeft, AnchorRight}

const (
	captionWords = 3
	captionInset = 50
	shadowOffset = 3
)

// Caption returns the first three words of prompt, upper-cased and joined by single spaces.
func Caption(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) > captionWords {
		words = words[:captionWords]
	}
	return strings.ToUpper(strings.Join(words, " "))
}

// Place returns the top-left corner of a w x h caption box on a canvas
// of the given size.
func Place(anchor Anchor, canvas image.Rectangle, w, h int) (image.Point, error) {
	cw, ch := canvas.Dx(), canvas.Dy()
	var p image.Point
	switch anchor {
	case AnchorTop:
		p = image.Pt(cw/2-w/2, captionInset)
	case AnchorBottom:
		p = image.Pt(cw/2-w/2, ch-h-captionInset)
	case AnchorLeft:
		p = image.Pt(captionInset, ch/2-h/2)
	case AnchorRight:
		p = image.Pt(cw-w-captionInset, ch/2-h/2)
	default:
		return image.Point{}, fmt.Errorf("unknown caption anchor: %s", anchor)
	}
	return p.Add(canvas.Min), nil
}

// Placement records how a caption was drawn.
type Placement struct {
	Caption string
	Anchor  Anchor
	Font    string
	Size    float64
	// Bounds is the caption's ink box on the canvas, excluding the shadow.
	Bounds image.Rectangle
}

// TextRenderer stamps a shadowed caption onto images.
type TextRenderer struct {
	src    Source
	fonts  []FontSource
	sizes  []float64
	logger hclog.Logger
}

// NewTextRenderer creates a TextRenderer. Nil or empty sizes use DefaultFontSizes.
func NewTextRenderer(src Source, fonts []FontSource, sizes []float64, logger hclog.Logger) *TextRenderer {
	if len(sizes) == 0 {
		sizes = DefaultFontSizes
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &TextRenderer{src: src, fonts: fonts, sizes: sizes, logger: logger}
}

// Render draws the caption derived from prompt onto dst: a black shadow
// offset by (+3,+3), then white text at a randomly chosen anchor.
func (t *TextRenderer) Render(dst draw.Image, prompt string) (Placement, error) {
	if dst == nil {
		return Placement{}, fmt.Errorf("destination image is required")
	}
	caption := Caption(prompt)
	if caption == "" {
		return Placement{}, fmt.Errorf("caption is empty")
	}

	f := AcquireFont(t.fonts, t.sizes)
	ink, _ := font.BoundString(f.Face, caption)
	w := (ink.Max.X - ink.Min.X).Ceil()
	h := (ink.Max.Y - ink.Min.Y).Ceil()

	anchor := pick(t.src, Anchors)
	topLeft, err := Place(anchor, dst.Bounds(), w, h)
	if err != nil {
		return Placement{}, err
	}

	// Dot is the baseline origin; shift it so the ink box starts at topLeft.
	dot := fixed.Point26_6{
		X: fixed.I(topLeft.X) - ink.Min.X,
		Y: fixed.I(topLeft.Y) - ink.Min.Y,
	}
	drawString(dst, f.Face, dot.Add(fixed.P(shadowOffset, shadowOffset)), color.Black, caption)
	drawString(dst, f.Face, dot, color.White, caption)

	p := Placement{
		Caption: caption,
		Anchor:  anchor,
		Font:    f.Name,
		Size:    f.Size,
		Bounds:  image.Rect(topLeft.X, topLeft.Y, topLeft.X+w, topLeft.Y+h),
	}
	t.logger.Debug("caption drawn", "caption", caption, "anchor", anchor, "font", f.Name, "size", f.Size)
	return p, nil
}

func drawString(dst draw.Image, face font.Face, dot fixed.Point26_6, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}
