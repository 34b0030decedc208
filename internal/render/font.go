package render

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFontSizes is the order in which point sizes are attempted.
var DefaultFontSizes = []float64{60, 48, 36, 24}

// FallbackFontName names the built-in bitmap face used when no outline
// font can be loaded.
const FallbackFontName = "basic-7x13"

// FontSource produces font faces at a requested point size.
type FontSource interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// Font is an acquired face plus where it came from.
type Font struct {
	Face font.Face
	Name string
	// Size is the point size, or 0 for the bitmap fallback.
	Size float64
}

// AcquireFont tries every size in order against every source in order and
// returns the first face that loads. When nothing loads it returns the
// built-in bitmap face, so it never fails.
func AcquireFont(sources []FontSource, sizes []float64) Font {
	for _, size := range sizes {
		for _, src := range sources {
			if src == nil {
				continue
			}
			face, err := src.Face(size)
			if err == nil && face != nil {
				return Font{Face: face, Name: src.Name(), Size: size}
			}
		}
	}
	return Font{Face: basicfont.Face7x13, Name: FallbackFontName}
}

// outline wraps a parsed OpenType font that is loaded lazily once.
type outline struct {
	name string
	load func() ([]byte, error)

	once   sync.Once
	parsed *opentype.Font
	err    error
}

func (o *outline) Name() string { return o.name }

func (o *outline) Face(size float64) (font.Face, error) {
	o.once.Do(func() {
		data, err := o.load()
		if err != nil {
			o.err = err
			return
		}
		o.parsed, o.err = opentype.Parse(data)
	})
	if o.err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", o.name, o.err)
	}
	return opentype.NewFace(o.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// FileFont returns a source reading a TrueType/OpenType file from disk.
func FileFont(path string) FontSource {
	return &outline{
		name: filepath.Base(path),
		load: func() ([]byte, error) {
			return os.ReadFile(path) // #nosec G304 - user-selected font file
		},
	}
}

// BundledFont returns a source backed by the Go Bold font compiled into the binary.
func BundledFont() FontSource {
	return &outline{
		name: "go-bold",
		load: func() ([]byte, error) { return gobold.TTF, nil },
	}
}

// systemFontCandidates lists well-known locations of a bold sans font per OS.
func systemFontCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		dir := filepath.Join(os.Getenv("WINDIR"), "Fonts")
		return []string{filepath.Join(dir, "arial.ttf"), filepath.Join(dir, "segoeui.ttf")}
	case "darwin":
		return []string{
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
			"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
		}
	}
}

// SystemFonts returns sources for the platform fonts that exist on disk.
func SystemFonts() []FontSource {
	var sources []FontSource
	for _, path := range systemFontCandidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			sources = append(sources, FileFont(path))
		}
	}
	return sources
}

// ResolveFonts maps a font setting to sources: "" searches system fonts,
// "go" selects the bundled font, anything else is a file path that is
// tried before the system fonts.
func ResolveFonts(setting string) []FontSource {
	switch setting {
	case "":
		return SystemFonts()
	case "go":
		return []FontSource{BundledFont()}
	default:
		return append([]FontSource{FileFont(setting)}, SystemFonts()...)
	}
}
