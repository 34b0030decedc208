package theme

import (
	"testing"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

func TestDefaultCatalogOrder(t *testing.T) {
	want := []Name{Nature, Ocean, Sunset, Space, Forest, City, Fire, Ice, Magic, Retro}
	got := Default().Names()
	if len(got) != len(want) {
		t.Fatalf("Names() has %d themes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDefaultCatalogPalettes(t *testing.T) {
	for _, th := range Default().Themes() {
		if len(th.Keywords) == 0 {
			t.Errorf("%s has no keywords", th.Name)
		}
		for i, hex := range th.Palette.ToHex() {
			if _, err := colour.ParseHex(hex); err != nil {
				t.Errorf("%s colour %d: %v", th.Name, i, err)
			}
		}
	}

	ocean, ok := Default().Palette(Ocean)
	if !ok {
		t.Fatal("ocean missing")
	}
	if ocean[0] != colour.MustParseHex("#006994") {
		t.Errorf("ocean[0] = %s, want #006994", ocean[0].Hex())
	}
}

func TestCatalogThemesIsCopy(t *testing.T) {
	themes := Default().Themes()
	themes[0].Keywords[0] = "mutated"
	th, _ := Default().Lookup(Nature)
	if th.Keywords[0] != "tree" {
		t.Errorf("catalog mutated through Themes(): %q", th.Keywords[0])
	}
}

func TestNewValidation(t *testing.T) {
	valid := Theme{Name: "a", Keywords: []string{"a"}}
	tests := []struct {
		name   string
		themes []Theme
	}{
		{name: "empty", themes: nil},
		{name: "blank name", themes: []Theme{{Keywords: []string{"x"}}}},
		{name: "duplicate", themes: []Theme{valid, valid}},
		{name: "no keywords", themes: []Theme{{Name: "b"}}},
		{name: "blank keyword", themes: []Theme{{Name: "c", Keywords: []string{" "}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.themes...); err == nil {
				t.Error("New() expected error")
			}
		})
	}

	c, err := New(Theme{Name: "x", Keywords: []string{" MiXed "}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	th, _ := c.Lookup("x")
	if th.Keywords[0] != "mixed" {
		t.Errorf("keyword not normalised: %q", th.Keywords[0])
	}
}
