// Package colour provides the colour primitives shared by the generators:
// RGB values, fixed-size palettes, hex parsing and linear blending.
package colour

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colours every theme palette holds.
const PaletteSize = 5

// RGB represents an opaque colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements color.Color. The colour is always fully opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// WithAlpha returns the colour as a non-premultiplied colour with the given opacity.
func (rgb RGB) WithAlpha(alpha uint8) color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha}
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses a "#rrggbb" or "#rgb" string.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		return RGB{}, fmt.Errorf("invalid hex colour %q: must start with #", hex)
	}
	if len(hex) != 4 && len(hex) != 7 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: must be #RGB or #RRGGBB", hex)
	}
	for _, ch := range hex[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return RGB{}, fmt.Errorf("invalid hex colour %q: bad digit %q", hex, ch)
		}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for static colour tables.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

// Palette is an ordered set of exactly PaletteSize colours.
type Palette [PaletteSize]RGB

// ParsePalette builds a palette from exactly PaletteSize hex strings.
func ParsePalette(hexes ...string) (Palette, error) {
	var p Palette
	if len(hexes) != PaletteSize {
		return p, fmt.Errorf("palette needs %d colours, got %d", PaletteSize, len(hexes))
	}
	for i, h := range hexes {
		rgb, err := ParseHex(h)
		if err != nil {
			return p, fmt.Errorf("colour %d: %w", i+1, err)
		}
		p[i] = rgb
	}
	return p, nil
}

// Colours returns the palette as a slice. The slice is a copy.
func (p Palette) Colours() []RGB {
	out := make([]RGB, len(p))
	copy(out, p[:])
	return out
}

// ToHex converts the palette colors to hex strings.
func (p Palette) ToHex() []string {
	hexColors := make([]string, len(p))
	for i, c := range p {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	var b strings.Builder
	for i, c := range p {
		fmt.Fprintf(&b, "  %d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1) of the colour.
func (rgb RGB) HSL() (h, s, l float64) {
	c, _ := colorful.MakeColor(rgb)
	return c.Hsl()
}
