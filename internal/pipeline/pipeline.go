// Package pipeline turns a text prompt into a themed procedural image:
// theme detection, style resolution, pattern generation, caption overlay
// and a post-processing effect, in that order.
package pipeline

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/promptpaint/internal/colour"
	"github.com/jmylchreest/promptpaint/internal/effect"
	"github.com/jmylchreest/promptpaint/internal/render"
	"github.com/jmylchreest/promptpaint/internal/seed"
	"github.com/jmylchreest/promptpaint/internal/theme"
)

// Config bundles everything the pipeline stages share. It replaces
// process-wide state: every random decision comes from Rand and every
// theme lookup goes through Catalog.
type Config struct {
	Catalog *theme.Catalog
	Rand    render.Source
	// Fonts are tried in order for the caption; the bitmap fallback is always available.
	Fonts     []render.FontSource
	FontSizes []float64
	// Effect is a named effect, effect.Random or effect.None.
	Effect effect.Name
	Logger hclog.Logger
}

// DefaultConfig returns a configuration with the built-in catalog, a
// randomly seeded source, system fonts and a random effect.
func DefaultConfig() Config {
	return Config{
		Catalog:   theme.Default(),
		Rand:      seed.NewRand(seed.GenerateRandomSeed()),
		Fonts:     render.SystemFonts(),
		FontSizes: render.DefaultFontSizes,
		Effect:    effect.Random,
		Logger:    hclog.NewNullLogger(),
	}
}

// Pipeline generates images from prompts. It is not safe for concurrent
// use because its stages share one random source.
type Pipeline struct {
	cfg      Config
	logger   hclog.Logger
	detector *theme.Detector
	gradient *render.GradientRenderer
	geometry *render.GeometricRenderer
	abstract *render.AbstractRenderer
	text     *render.TextRenderer
	effects  *effect.Processor
}

// New creates a pipeline. A nil Catalog, Rand or Logger is replaced with
// its default; nil Fonts leaves only the bitmap fallback for captions.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = theme.Default()
	}
	if cfg.Catalog.Len() == 0 {
		return nil, fmt.Errorf("theme catalog is empty")
	}
	if cfg.Rand == nil {
		cfg.Rand = seed.NewRand(seed.GenerateRandomSeed())
	}
	if len(cfg.FontSizes) == 0 {
		cfg.FontSizes = render.DefaultFontSizes
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	name, err := effect.ParseName(string(cfg.Effect))
	if err != nil {
		return nil, err
	}
	cfg.Effect = name

	logger := cfg.Logger.Named("pipeline")
	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		detector: theme.NewDetector(cfg.Catalog, cfg.Rand),
		gradient: render.NewGradientRenderer(cfg.Rand, logger.Named("gradient")),
		geometry: render.NewGeometricRenderer(cfg.Rand, logger.Named("geometric")),
		abstract: render.NewAbstractRenderer(cfg.Rand, logger.Named("abstract")),
		text:     render.NewTextRenderer(cfg.Rand, cfg.Fonts, cfg.FontSizes, logger.Named("text")),
		effects:  effect.NewProcessor(cfg.Rand, logger.Named("effect")),
	}, nil
}

// Catalog returns the catalog the pipeline detects themes against.
func (p *Pipeline) Catalog() *theme.Catalog {
	return p.cfg.Catalog
}

// Generate runs the full pipeline for one request. On failure no image is
// returned; the error is ErrEmptyPrompt, a request validation error or a
// *RenderError naming the failing stage.
func (p *Pipeline) Generate(req Request) (*Result, error) {
	req, err := req.normalise()
	if err != nil {
		return nil, err
	}

	res := &Result{Prompt: req.Prompt, Width: req.Width, Height: req.Height}
	var palette colour.Palette

	err = run(StageTheme, func() error {
		res.Detection = p.detector.Detect(req.Prompt)
		res.Theme = res.Detection.Theme
		pal, ok := p.cfg.Catalog.Palette(res.Theme)
		if !ok {
			return fmt.Errorf("theme %s has no palette", res.Theme)
		}
		palette = pal
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Style = req.Style
	if res.Style == StyleAuto {
		res.Style = ConcreteStyles[p.cfg.Rand.Intn(len(ConcreteStyles))]
	}
	p.logger.Debug("resolved request", "prompt", req.Prompt, "theme", res.Theme,
		"score", res.Detection.Score, "random_theme", res.Detection.Random, "style", res.Style)

	var canvas *image.RGBA
	err = run(StagePattern, func() error {
		var err error
		canvas, res.Variant, err = p.pattern(res.Style, req.Width, req.Height, palette)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = run(StageCaption, func() error {
		var err error
		res.Caption, err = p.text.Render(canvas, req.Prompt)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = run(StageEffect, func() error {
		var err error
		res.Image, res.Effect, err = p.effects.Apply(canvas, p.cfg.Effect)
		return err
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("image generated", "theme", res.Theme, "style", res.Style,
		"variant", res.Variant, "effect", res.Effect)
	return res, nil
}

// pattern dispatches to the generator for style.
func (p *Pipeline) pattern(style Style, w, h int, pal colour.Palette) (*image.RGBA, string, error) {
	switch style {
	case StyleGradient:
		img, kind, err := p.gradient.Render(w, h, pal[0], pal[1])
		return img, string(kind), err
	case StyleAbstract:
		img, n, err := p.abstract.Render(w, h, pal[:])
		return img, fmt.Sprintf("%d shapes", n), err
	case StyleGeometric:
		base := render.NewCanvas(w, h, pal[0])
		img, ov, err := p.geometry.Render(base, pal[1:])
		return img, fmt.Sprintf("%d %s", ov.Shapes, ov.Kind), err
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}
