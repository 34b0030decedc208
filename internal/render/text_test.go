package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaption(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"a b c d e", "A B C"},
		{"Ocean sunset", "OCEAN SUNSET"},
		{"  magic   wizard\tcastle in fog ", "MAGIC WIZARD CASTLE"},
		{"single", "SINGLE"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Caption(tt.prompt), "prompt %q", tt.prompt)
	}
}

func TestPlace(t *testing.T) {
	canvas := image.Rect(0, 0, 800, 600)
	tests := []struct {
		anchor Anchor
		want   image.Point
	}{
		{AnchorTop, image.Pt(350, 50)},
		{AnchorBottom, image.Pt(350, 530)},
		{AnchorLeft, image.Pt(50, 290)},
		{AnchorRight, image.Pt(650, 290)},
	}
	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			p, err := Place(tt.anchor, canvas, 100, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	_, err := Place("middle", canvas, 1, 1)
	assert.Error(t, err)
}

func TestPlaceOffsetCanvas(t *testing.T) {
	p, err := Place(AnchorLeft, image.Rect(10, 20, 210, 120), 40, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(60, 65), p)
}

func TestTextRenderFallbackFont(t *testing.T) {
	img := NewCanvas(400, 300, color.Black)

	p, err := NewTextRenderer(zeroSource(), nil, nil, nil).Render(img, "neon cyberpunk city lights")
	require.NoError(t, err)
	assert.Equal(t, "NEON CYBERPUNK CITY", p.Caption)
	assert.Equal(t, AnchorTop, p.Anchor)
	assert.Equal(t, FallbackFontName, p.Font)
	assert.Zero(t, p.Size)

	assert.Equal(t, captionInset, p.Bounds.Min.Y)
	assert.Equal(t, 200-p.Bounds.Dx()/2, p.Bounds.Min.X)
	assert.True(t, p.Bounds.In(img.Bounds()))

	white := 0
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				white++
			}
		}
	}
	assert.Positive(t, white, "caption ink should be white")
}

func TestTextRenderShadow(t *testing.T) {
	img := NewCanvas(800, 300, color.White)
	p, err := NewTextRenderer(&seqSource{vals: []int{1}}, []FontSource{BundledFont()}, nil, nil).Render(img, "frozen winter")
	require.NoError(t, err)
	assert.Equal(t, AnchorBottom, p.Anchor)
	assert.Equal(t, "go-bold", p.Font)
	assert.Equal(t, 60.0, p.Size)

	found := false
	shadow := p.Bounds.Add(image.Pt(shadowOffset, shadowOffset))
	for y := shadow.Min.Y; y < shadow.Max.Y && !found; y++ {
		for x := shadow.Min.X; x < shadow.Max.X; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{A: 255}) {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "expected black shadow pixels")
}

func TestTextRenderErrors(t *testing.T) {
	tr := NewTextRenderer(zeroSource(), nil, nil, nil)
	_, err := tr.Render(nil, "hello")
	assert.Error(t, err)
	_, err = tr.Render(NewCanvas(10, 10, color.Black), "   ")
	assert.Error(t, err)
}
