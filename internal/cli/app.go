package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/promptpaint/internal/config"
	"github.com/jmylchreest/promptpaint/internal/effect"
	"github.com/jmylchreest/promptpaint/internal/output"
	"github.com/jmylchreest/promptpaint/internal/pipeline"
	"github.com/jmylchreest/promptpaint/internal/render"
	"github.com/jmylchreest/promptpaint/internal/seed"
	"github.com/jmylchreest/promptpaint/internal/theme"
)

// app is the per-invocation state built from settings and flags.
type app struct {
	settings config.Settings
	logger   hclog.Logger
	writer   *output.Writer
	fonts    []render.FontSource
	out      io.Writer
	quiet    bool
}

// newApp loads settings, layers the command's flags over them and builds
// the logger and output writer.
func newApp(cmd *cobra.Command, root *rootFlags, gen *genFlags) (*app, error) {
	settings, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		gen.apply(cmd.Flags(), &settings)
	}
	if root.logLevel != "" {
		settings.LogLevel = root.logLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), logLevel(settings.LogLevel, root.verbose, root.quiet))
	logger.Debug("settings resolved", "output_dir", settings.OutputDir, "width", settings.Width,
		"height", settings.Height, "style", settings.Style, "effect", settings.Effect,
		"font", settings.Font, "seed_mode", settings.SeedMode)

	return &app{
		settings: settings,
		logger:   logger,
		writer:   output.NewWriter(settings.OutputDir),
		fonts:    render.ResolveFonts(settings.Font),
		out:      cmd.OutOrStdout(),
		quiet:    root.quiet,
	}, nil
}

// pipelineFor builds a pipeline whose random source is seeded for prompts
// according to the seed mode.
func (a *app) pipelineFor(prompts ...string) (*pipeline.Pipeline, error) {
	mode, err := seed.ParseMode(a.settings.SeedMode)
	if err != nil {
		return nil, err
	}
	value, err := seed.Calculate(seed.Config{Mode: mode, Value: a.settings.Seed}, prompts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("seeded random source", "mode", mode, "seed", value)

	fx, err := effect.ParseName(a.settings.Effect)
	if err != nil {
		return nil, err
	}
	return pipeline.New(pipeline.Config{
		Catalog: theme.Default(),
		Rand:    seed.NewRand(value),
		Fonts:   a.fonts,
		Effect:  fx,
		Logger:  a.logger,
	})
}

// request builds a generation request from settings, with style overriding
// the configured style when non-empty.
func (a *app) request(prompt string, style pipeline.Style) pipeline.Request {
	if style == "" {
		style = pipeline.Style(a.settings.Style)
	}
	return pipeline.Request{
		Prompt: prompt,
		Width:  a.settings.Width,
		Height: a.settings.Height,
		Style:  style,
	}
}

// printf writes user-facing status unless --quiet is set.
func (a *app) printf(format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(a.out, format, args...)
}

// save writes res and reports where it went.
func (a *app) save(res *pipeline.Result) (string, error) {
	path, err := a.writer.Save(res.Image, string(res.Style))
	if err != nil {
		return "", err
	}
	a.report(path, res)
	return path, nil
}

func (a *app) report(path string, res *pipeline.Result) {
	a.printf("✓ Saved to: %s\n", path)
	if fi, err := output.Stat(path); err == nil {
		a.printf("  ├─ Full path: %s\n", fi.AbsPath)
		a.printf("  ├─ File size: %.1f KB (%dx%d)\n", fi.SizeKB(), fi.Width, fi.Height)
	}
	a.printf("  └─ Theme: %s | Style: %s (%s) | Effect: %s\n", res.Theme, res.Style, res.Variant, res.Effect)
}

// openResult launches the viewer, warning rather than failing when it cannot.
func (a *app) openResult(path string) {
	if err := output.Open(path); err != nil {
		a.logger.Warn("could not open image", "path", path, "error", err)
		a.printf("⚠ Could not auto-open image: %v\n", err)
		return
	}
	a.printf("  Opening image...\n")
}

// readPrompts splits text into one prompt per line, skipping blank lines
// and lines starting with #.
func readPrompts(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts: %w", err)
	}
	var prompts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	return prompts, nil
}
