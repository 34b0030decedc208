// Package cli provides the command-line interface for promptpaint.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/promptpaint/internal/version"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	verbose    bool
	quiet      bool
	configPath string
	logLevel   string
}

// NewRootCmd builds the promptpaint command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "promptpaint",
		Short: "Generate themed procedural artwork from text prompts",
		Long: `promptpaint turns a short text prompt into an artistic image without any
network access or learned model.

The prompt picks a colour theme by keyword (ocean, sunset, space, ...), then a
gradient, abstract collage or geometric pattern is painted in that theme's
palette, captioned with the first words of the prompt and finished with a
filter effect. Images are written as PNG files.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "settings file (default: user config dir/promptpaint/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newBatchCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newInteractiveCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
