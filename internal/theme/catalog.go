// Package theme holds the fixed catalog of colour themes and the keyword
// scoring used to pick one for a prompt.
package theme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

// Name identifies a theme in the catalog.
type Name string

// Built-in theme names, in catalog order.
const (
	Nature Name = "nature"
	Ocean  Name = "ocean"
	Sunset Name = "sunset"
	Space  Name = "space"
	Forest Name = "forest"
	City   Name = "city"
	Fire   Name = "fire"
	Ice    Name = "ice"
	Magic  Name = "magic"
	Retro  Name = "retro"
)

// Theme is a named palette plus the lowercase keywords that select it.
type Theme struct {
	Name     Name
	Palette  colour.Palette
	Keywords []string
}

// Catalog is an immutable, ordered set of themes. Order matters: it
// decides ties during detection and the order of listings.
type Catalog struct {
	themes []Theme
	index  map[Name]int
}

// New builds a catalog from themes in the given order.
func New(themes ...Theme) (*Catalog, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("catalog needs at least one theme")
	}

	c := &Catalog{
		themes: make([]Theme, 0, len(themes)),
		index:  make(map[Name]int, len(themes)),
	}
	for _, t := range themes {
		if t.Name == "" {
			return nil, fmt.Errorf("theme name cannot be empty")
		}
		if _, dup := c.index[t.Name]; dup {
			return nil, fmt.Errorf("duplicate theme: %s", t.Name)
		}
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("theme %s has no keywords", t.Name)
		}

		keywords := make([]string, len(t.Keywords))
		for i, k := range t.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				return nil, fmt.Errorf("theme %s has an empty keyword", t.Name)
			}
			keywords[i] = k
		}
		t.Keywords = keywords

		c.index[t.Name] = len(c.themes)
		c.themes = append(c.themes, t)
	}
	return c, nil
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// Themes returns a copy of the themes in catalog order.
func (c *Catalog) Themes() []Theme {
	out := make([]Theme, len(c.themes))
	for i, t := range c.themes {
		t.Keywords = append([]string(nil), t.Keywords...)
		out[i] = t
	}
	return out
}

// Names returns theme names in catalog order.
func (c *Catalog) Names() []Name {
	names := make([]Name, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func (c *Catalog) Lookup(name Name) (Theme, bool) {
	i, ok := c.index[name]
	if !ok {
		return Theme{}, false
	}
	return c.themes[i], true
}

// Palette returns the palette for name, or false if the theme is unknown.
func (c *Catalog) Palette(name Name) (colour.Palette, bool) {
	t, ok := c.Lookup(name)
	return t.Palette, ok
}

var defaultCatalog = mustBuiltin()

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustBuiltin() *Catalog {
	def := func(name Name, palette []string, keywords ...string) Theme {
		p, err := colour.ParsePalette(palette...)
		if err != nil {
			panic(fmt.Sprintf("theme %s: %v", name, err))
		}
		return Theme{Name: name, Palette: p, Keywords: keywords}
	}

	c, err := New(
		def(Nature, []string{"#228B22", "#32CD32", "#90EE90", "#006400", "#8FBC8F"},
			"tree", "grass", "plant", "garden", "nature", "leaf"),
		def(Ocean, []string{"#006994", "#4682B4", "#87CEEB", "#1E90FF", "#00CED1"},
			"ocean", "sea", "water", "wave", "beach", "blue"),
		def(Sunset, []string{"#FF6347", "#FF8C00", "#FFD700", "#FF69B4", "#DC143C"},
			"sunset", "dawn", "orange", "warm", "golden"),
		def(Space, []string{"#191970", "#4B0082", "#8B008B", "#9400D3", "#000080"},
			"space", "star", "galaxy", "cosmic", "universe", "nebula"),
		def(Forest, []string{"#228B22", "#006400", "#8B4513", "#2E8B57", "#556B2F"},
			"forest", "wood", "jungle", "tree", "green"),
		def(City, []string{"#696969", "#2F4F4F", "#708090", "#778899", "#A9A9A9"},
			"city", "urban", "building", "street", "skyscraper"),
		def(Fire, []string{"#FF4500", "#FF6347", "#FF8C00", "#FFD700", "#DC143C"},
			"fire", "flame", "hot", "red", "burning"),
		def(Ice, []string{"#B0E0E6", "#87CEEB", "#ADD8E6", "#E0FFFF", "#F0F8FF"},
			"ice", "cold", "frozen", "winter", "snow"),
		def(Magic, []string{"#9370DB", "#BA55D3", "#DA70D6", "#EE82EE", "#DDA0DD"},
			"magic", "mystical", "fantasy", "enchanted", "wizard"),
		def(Retro, []string{"#FF1493", "#00FFFF", "#FFFF00", "#FF69B4", "#00FF00"},
			"retro", "neon", "cyberpunk", "80s", "synthwave"),
	)
	if err != nil {
		panic(err)
	}
	return c
}
