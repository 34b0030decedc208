package effect

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRunPreservesSizeAndOpacity(t *testing.T) {
	src := uniform(40, 30, color.RGBA{R: 70, G: 130, B: 180, A: 255})
	// a contrasting square so the kernels have something to work on
	draw.Draw(src, image.Rect(10, 10, 20, 20), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, name := range All {
		t.Run(string(name), func(t *testing.T) {
			out, err := Run(name, src)
			require.NoError(t, err)
			assert.Equal(t, 40, out.Bounds().Dx())
			assert.Equal(t, 30, out.Bounds().Dy())
			assert.Equal(t, uint8(255), nrgbaAt(out, 15, 15).A)
			assert.Equal(t, uint8(255), nrgbaAt(out, 0, 0).A)
		})
	}
}

func TestNormalisedKernelsKeepFlatColour(t *testing.T) {
	c := color.NRGBA{R: 255, G: 99, B: 71, A: 255}
	src := uniform(16, 16, c)

	for _, name := range []Name{Blur, Sharpen, EdgeEnhance, Smooth} {
		t.Run(string(name), func(t *testing.T) {
			out, err := Run(name, src)
			require.NoError(t, err)
			got := nrgbaAt(out, 8, 8)
			assert.InDelta(t, int(c.R), int(got.R), 1)
			assert.InDelta(t, int(c.G), int(got.G), 1)
			assert.InDelta(t, int(c.B), int(got.B), 1)
		})
	}
}

func TestEmbossFlatColourTurnsGrey(t *testing.T) {
	out, err := Run(Emboss, uniform(8, 8, color.RGBA{R: 10, G: 200, B: 90, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, nrgbaAt(out, 4, 4))
}

func TestEmbossSubtractsLowerLeftNeighbour(t *testing.T) {
	// black upper half, white lower half
	src := uniform(6, 6, color.Black)
	draw.Draw(src, image.Rect(0, 3, 6, 6), image.NewUniform(color.White), image.Point{}, draw.Src)

	out, err := Run(Emboss, src)
	require.NoError(t, err)
	// each pixel minus its lower-left neighbour, offset by 128
	assert.Equal(t, uint8(128), nrgbaAt(out, 3, 0).R)
	assert.Equal(t, uint8(0), nrgbaAt(out, 3, 2).R)
	assert.Equal(t, uint8(128), nrgbaAt(out, 3, 3).R)
	assert.Equal(t, uint8(128), nrgbaAt(out, 3, 5).R)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(Blur, nil)
	assert.Error(t, err)
	_, err = Run(Sharpen, image.NewRGBA(image.Rectangle{}))
	assert.Error(t, err)
	_, err = Run("posterize", uniform(2, 2, color.Black))
	assert.Error(t, err)
}

func TestApplyNone(t *testing.T) {
	src := uniform(4, 4, color.Black)
	out, name, err := NewProcessor(rand.New(rand.NewSource(1)), nil).Apply(src, None)
	require.NoError(t, err)
	assert.Equal(t, None, name)
	assert.Same(t, src, out)
}

func TestApplyForced(t *testing.T) {
	out, name, err := NewProcessor(rand.New(rand.NewSource(1)), nil).Apply(uniform(4, 4, color.White), Emboss)
	require.NoError(t, err)
	assert.Equal(t, Emboss, name)
	assert.Equal(t, uint8(128), nrgbaAt(out, 2, 2).R)
}

func TestApplyRandomCoversAll(t *testing.T) {
	p := NewProcessor(rand.New(rand.NewSource(3)), nil)
	src := uniform(3, 3, color.White)
	seen := make(map[Name]bool)
	for i := 0; i < 200; i++ {
		_, name, err := p.Apply(src, Random)
		require.NoError(t, err)
		seen[name] = true
	}
	assert.Len(t, seen, len(All))
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{"blur", Blur, false},
		{"Edge-Enhance", EdgeEnhance, false},
		{"edge_enhance", EdgeEnhance, false},
		{"", Random, false},
		{"none", None, false},
		{"random", Random, false},
		{"posterize", "", true},
	}
	for _, tt := range tests {
		got, err := ParseName(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
