package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newGenerateCmd(root *rootFlags) *cobra.Command {
	gen := &genFlags{}

	cmd := &cobra.Command{
		Use:   "generate <prompt...>",
		Short: "Generate an image from a prompt",
		Long: `Generate a single image from a text prompt.

The prompt's keywords choose the colour theme; words after the command are
joined into one prompt, so quoting is optional.

Examples:
  # Let the style be chosen at random
  promptpaint generate "Mystical forest with glowing mushrooms"

  # Force a style and size
  promptpaint generate --style geometric -W 1024 -H 768 deep ocean waves

  # Reproducible output for the same prompt
  promptpaint generate --seed-mode prompt "Retro neon cityscape"

  # Skip the filter stage and open the result
  promptpaint generate --effect none --open "Ice crystal formations"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			a, err := newApp(cmd, root, gen)
			if err != nil {
				return err
			}
			p, err := a.pipelineFor(prompt)
			if err != nil {
				return err
			}

			a.printf("Generating image for: %q\n", prompt)
			res, err := p.Generate(a.request(prompt, ""))
			if err != nil {
				a.logger.Error("generation failed", "prompt", prompt, "error", err)
				return err
			}
			path, err := a.save(res)
			if err != nil {
				return err
			}
			if gen.open {
				a.openResult(path)
			}
			return nil
		},
	}

	gen.register(cmd.Flags(), true)
	return cmd
}
