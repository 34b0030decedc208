package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/promptpaint/internal/colour"
)

func TestTableAddRowNormalisesLength(t *testing.T) {
	table := NewTable([]string{"Theme", "Keywords"})

	table.AddRow([]string{"ocean"})
	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[0])
	}

	table.AddRow([]string{"fire", "flame", "extra"})
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected long row to be truncated to 2 columns, got %d", len(table.rows[1]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Theme", "Keywords"})
	table.AddRow([]string{"ocean", "ocean sea water"})
	table.AddRow([]string{"ice", "ice cold"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected header, separator and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "-----") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("Separator length (%d) should match header length (%d)", len(lines[1]), len(lines[0]))
	}
	if !strings.HasPrefix(lines[3], "ice    ") {
		t.Errorf("Expected ice row padded to the theme column, got: %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Expected empty string for empty table, got: %q", out)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	strip := colour.PaletteStrip(colour.Palette{}, 2)

	table := NewTable([]string{"Swatch", "Name"})
	table.AddRow([]string{strip, "black"})
	out := table.Render()

	lines := strings.Split(out, "\n")
	// five 2-cell swatches occupy 10 columns, so "Name" starts at column 12
	if idx := strings.Index(lines[0], "Name"); idx != 12 {
		t.Errorf("Expected Name header at column 12, got %d", idx)
	}
	if !strings.Contains(lines[2], strip+"  black") {
		t.Errorf("Expected swatch cell without extra padding, got: %q", lines[2])
	}
}

func TestTableWrapsColumn(t *testing.T) {
	table := NewTable([]string{"Theme", "Keywords"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"space", "space star galaxy cosmic"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 3 wrapped lines after the header, got %d lines: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[3], "       galaxy") {
		t.Errorf("Expected continuation line to leave the theme column blank, got: %q", lines[3])
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"space star galaxy cosmic", 10, []string{"space star", "galaxy", "cosmic"}},
		{"abcdefghijkl", 5, []string{"abcde", "fghij", "kl"}},
		{"anything", 0, []string{"anything"}},
	}

	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
