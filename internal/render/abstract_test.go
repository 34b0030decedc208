package render

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/promptpaint/internal/colour"
	"github.com/jmylchreest/promptpaint/internal/theme"
)

func TestAbstractStartsWhite(t *testing.T) {
	pal, _ := theme.Default().Palette(theme.Magic)

	// zero source: ten single-pixel ellipses at the origin
	img, n, err := NewAbstractRenderer(zeroSource(), nil).Render(200, 100, pal.Colours())
	require.NoError(t, err)
	assert.Equal(t, minCollageShapes, n)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(150, 80))
}

func TestAbstractOpaqueOverwrite(t *testing.T) {
	pal, _ := theme.Default().Palette(theme.Retro)
	cs := pal.Colours()

	// count 10, first shape: rectangle, colour 2, box (10,10)-(60,60); the
	// remaining shapes collapse onto the origin
	src := &seqSource{vals: []int{0, 1, 2, 10, 10, 50, 50}}
	img, _, err := NewAbstractRenderer(src, nil).Render(200, 100, cs)
	require.NoError(t, err)

	assert.Equal(t, cs[2], colour.ToRGB(img.At(30, 30)))
	assert.Equal(t, cs[2], colour.ToRGB(img.At(60, 60)))
	assert.Equal(t, colour.RGB{R: 255, G: 255, B: 255}, colour.ToRGB(img.At(61, 61)))
}

func TestAbstractHardEdgedEllipse(t *testing.T) {
	cs := []colour.RGB{{R: 255}, {G: 255}, {B: 255}}

	// count 10, first shape: ellipse, colour 1, box (20,20)-(80,80)
	src := &seqSource{vals: []int{0, 0, 1, 20, 20, 60, 60}}
	img, _, err := NewAbstractRenderer(src, nil).Render(120, 100, cs)
	require.NoError(t, err)

	assert.Equal(t, cs[1], colour.ToRGB(img.At(50, 50)))
	assert.Equal(t, colour.RGB{R: 255, G: 255, B: 255}, colour.ToRGB(img.At(22, 22)))
	for y := 15; y < 86; y++ {
		for x := 15; x < 86; x++ {
			c := colour.ToRGB(img.At(x, y))
			require.True(t, c == cs[1] || c == colour.RGB{R: 255, G: 255, B: 255},
				"pixel (%d,%d) is %v", x, y, c)
		}
	}
}

func TestAbstractPixelsArePaletteOrWhite(t *testing.T) {
	cs := []colour.RGB{{R: 255}, {G: 255}, {B: 255}}
	allowed := map[colour.RGB]bool{
		cs[0]: true, cs[1]: true, cs[2]: true,
		{R: 255, G: 255, B: 255}: true,
	}

	for seed := int64(1); seed <= 6; seed++ {
		img, n, err := NewAbstractRenderer(rand.New(rand.NewSource(seed)), nil).Render(200, 150, cs)
		require.NoError(t, err)

		stray := 0
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !allowed[colour.ToRGB(img.At(x, y))] {
					stray++
				}
			}
		}
		assert.Zero(t, stray, "seed %d, %d shapes", seed, n)
	}
}

func TestAbstractShapeCountRange(t *testing.T) {
	pal, _ := theme.Default().Palette(theme.Fire)
	a := NewAbstractRenderer(rand.New(rand.NewSource(11)), nil)
	for i := 0; i < 25; i++ {
		img, n, err := a.Render(64, 48, pal.Colours())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, minCollageShapes)
		assert.LessOrEqual(t, n, maxCollageShapes)
		assert.Equal(t, uint8(0xff), img.RGBAAt(63, 47).A)
	}
}

func TestAbstractErrors(t *testing.T) {
	a := NewAbstractRenderer(zeroSource(), nil)
	_, _, err := a.Render(0, 10, []colour.RGB{{}})
	assert.Error(t, err)
	_, _, err = a.Render(10, 10, nil)
	assert.Error(t, err)
}

func TestCornerBoxOrdering(t *testing.T) {
	src := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		x1, y1, x2, y2 := cornerBox(src, 800, 600)
		require.True(t, x1 >= 0 && x1 <= 400, "x1=%d", x1)
		require.True(t, y1 >= 0 && y1 <= 300, "y1=%d", y1)
		require.True(t, x2 >= x1 && x2 <= 800, "x2=%d", x2)
		require.True(t, y2 >= y1 && y2 <= 600, "y2=%d", y2)
	}
}
