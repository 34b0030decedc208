package pipeline

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/jmylchreest/promptpaint/internal/effect"
	"github.com/jmylchreest/promptpaint/internal/render"
	"github.com/jmylchreest/promptpaint/internal/theme"
)

// Style selects the pattern generator.
type Style string

const (
	StyleAuto      Style = "auto"
	StyleGradient  Style = "gradient"
	StyleAbstract  Style = "abstract"
	StyleGeometric Style = "geometric"
)

// ConcreteStyles lists the styles auto resolves to, in selection order.
var ConcreteStyles = []Style{StyleGradient, StyleAbstract, StyleGeometric}

// ParseStyle converts a string to a Style. An empty string means auto.
// Anything else that is not recognised is rejected with ErrUnknownStyle.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if style == "" {
		return StyleAuto, nil
	}
	if style == StyleAuto || slices.Contains(ConcreteStyles, style) {
		return style, nil
	}
	return "", fmt.Errorf("%w: %q (valid: auto, gradient, abstract, geometric)", ErrUnknownStyle, s)
}

// Default and maximum canvas dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MaxDimension  = 8192
)

// Request describes one generation.
type Request struct {
	Prompt string
	// Width and Height default to 800x600 when zero.
	Width  int
	Height int
	// Style defaults to auto when empty.
	Style Style
}

// normalise trims the prompt, applies defaults and validates the request.
func (r Request) normalise() (Request, error) {
	r.Prompt = strings.TrimSpace(r.Prompt)
	if r.Prompt == "" {
		return r, ErrEmptyPrompt
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Width < 0 || r.Height < 0 || r.Width > MaxDimension || r.Height > MaxDimension {
		return r, fmt.Errorf("%w: %dx%d (each side must be 1-%d)", ErrInvalidSize, r.Width, r.Height, MaxDimension)
	}
	style, err := ParseStyle(string(r.Style))
	if err != nil {
		return r, err
	}
	r.Style = style
	return r, nil
}

// Result is a finished image plus the choices that produced it.
type Result struct {
	Image  image.Image
	Prompt string
	Width  int
	Height int

	// Theme is the detected theme; Detection has the scoring details.
	Theme     theme.Name
	Detection theme.Detection
	// Style is always concrete, never auto.
	Style Style
	// Variant is the generator-specific choice, for example the gradient
	// kind or the overlay pattern.
	Variant string
	Caption render.Placement
	Effect  effect.Name
}
