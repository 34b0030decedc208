package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/promptpaint/internal/colour"
	"github.com/jmylchreest/promptpaint/internal/theme"
)

// termIsTerminal is replaced in tests.
var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return termIsTerminal(int(f.Fd()))
	}
	return false
}

func newThemesCmd() *cobra.Command {
	var preview, noPreview bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the colour themes and their keywords",
		Long: `List every colour theme in detection order. A prompt containing a theme's
keywords selects that theme; ties go to the theme listed first. Swatches are
shown when writing to a terminal, or always with --preview.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			show := preview || (!noPreview && isTerminal(cmd.OutOrStdout()))
			_, err := io.WriteString(cmd.OutOrStdout(), renderThemes(theme.Default(), show))
			return err
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "always show ANSI colour swatches")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "never show colour swatches")
	return cmd
}

// renderThemes formats the catalog as a table.
func renderThemes(c *theme.Catalog, swatches bool) string {
	headers := []string{"Theme", "Palette", "Lead HSL", "Keywords"}
	if swatches {
		headers = append([]string{"Swatch"}, headers...)
	}
	table := NewTable(headers)
	table.SetColumnMaxWidth(len(headers)-1, 40)

	for _, t := range c.Themes() {
		h, s, l := t.Palette[0].HSL()
		row := []string{
			string(t.Name),
			strings.Join(t.Palette.ToHex(), " "),
			fmt.Sprintf("%3.0f° %3.0f%% %3.0f%%", h, s*100, l*100),
			strings.Join(t.Keywords, ", "),
		}
		if swatches {
			row = append([]string{colour.PaletteStrip(t.Palette, 2)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}
