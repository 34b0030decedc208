package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/promptpaint/internal/config"
)

// genFlags are the generation options shared by generate, batch, compare
// and interactive. Only flags the user actually set override settings.
type genFlags struct {
	width     int
	height    int
	style     string
	effect    string
	outputDir string
	font      string
	seedMode  string
	seed      int64
	open      bool
}

// register adds the generation flags to fs. withStyle is false for
// commands that choose styles themselves.
func (g *genFlags) register(fs *pflag.FlagSet, withStyle bool) {
	d := config.Defaults()
	fs.IntVarP(&g.width, "width", "W", d.Width, "image width in pixels")
	fs.IntVarP(&g.height, "height", "H", d.Height, "image height in pixels")
	if withStyle {
		fs.StringVarP(&g.style, "style", "s", d.Style, "pattern style (auto, gradient, abstract, geometric)")
	}
	fs.StringVarP(&g.effect, "effect", "e", d.Effect, "post-processing effect (random, none, blur, sharpen, emboss, edge_enhance, smooth)")
	fs.StringVarP(&g.outputDir, "output-dir", "o", d.OutputDir, "directory for generated images")
	fs.StringVar(&g.font, "font", d.Font, `caption font: a TrueType/OpenType file, "go" for the bundled font, empty to search system fonts`)
	fs.StringVar(&g.seedMode, "seed-mode", d.SeedMode, "random seed mode (random, prompt, manual)")
	fs.Int64Var(&g.seed, "seed", 0, "seed value; implies --seed-mode manual")
	fs.BoolVar(&g.open, "open", false, "open generated images in the default viewer")
}

// apply copies explicitly set flags over s.
func (g *genFlags) apply(fs *pflag.FlagSet, s *config.Settings) {
	if fs.Changed("width") {
		s.Width = g.width
	}
	if fs.Changed("height") {
		s.Height = g.height
	}
	if fs.Lookup("style") != nil && fs.Changed("style") {
		s.Style = g.style
	}
	if fs.Changed("effect") {
		s.Effect = g.effect
	}
	if fs.Changed("output-dir") {
		s.OutputDir = g.outputDir
	}
	if fs.Changed("font") {
		s.Font = g.font
	}
	if fs.Changed("seed-mode") {
		s.SeedMode = g.seedMode
	}
	if fs.Changed("seed") {
		s.SetSeed(g.seed)
	}
}
