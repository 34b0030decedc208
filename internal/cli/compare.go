package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/promptpaint/internal/pipeline"
)

func newCompareCmd(root *rootFlags) *cobra.Command {
	gen := &genFlags{}

	cmd := &cobra.Command{
		Use:   "compare <prompt...>",
		Short: "Render one prompt in every style",
		Long: `Generate the same prompt once in each concrete style (gradient, abstract,
geometric) so the results can be compared side by side.`,
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
			return runCompare(a, p, prompt, gen.open)
		},
	}

	gen.register(cmd.Flags(), false)
	return cmd
}

func runCompare(a *app, p *pipeline.Pipeline, prompt string, open bool) error {
	a.printf("Generating %q in different styles...\n", prompt)

	var firstErr error
	for _, style := range pipeline.ConcreteStyles {
		a.printf("\nGenerating %s style...\n", style)
		res, err := p.Generate(a.request(prompt, style))
		if err == nil {
			var path string
			if path, err = a.save(res); err == nil && open {
				a.openResult(path)
			}
		}
		if err != nil {
			a.printf("✗ %s failed: %v\n", style, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
