package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/promptpaint/internal/output"
	"github.com/jmylchreest/promptpaint/internal/pipeline"
)

type batchFlags struct {
	file     string
	examples bool
	archive  string
}

func newBatchCmd(root *rootFlags) *cobra.Command {
	gen := &genFlags{}
	bf := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [prompt...]",
		Short: "Generate one image per prompt",
		Long: `Generate images for several prompts in order. A failing prompt is reported
and skipped; the remaining prompts are still processed.

Prompts come from the arguments, from a file with one prompt per line
(--file, "-" for stdin; blank lines and # comments are ignored) and from the
built-in examples (--examples).

Examples:
  promptpaint batch "Ocean waves at sunset" "Fire and flame patterns"
  promptpaint batch --file prompts.txt --style abstract
  promptpaint batch --examples --archive examples.tar.xz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := append([]string(nil), args...)
			if bf.file != "" {
				more, err := promptsFromFile(cmd, bf.file)
				if err != nil {
					return err
				}
				prompts = append(prompts, more...)
			}
			if bf.examples {
				prompts = append(prompts, examplePrompts...)
			}
			if len(prompts) == 0 {
				return errors.New("no prompts given (use arguments, --file or --examples)")
			}

			a, err := newApp(cmd, root, gen)
			if err != nil {
				return err
			}
			p, err := a.pipelineFor(prompts...)
			if err != nil {
				return err
			}
			return runBatch(cmd, a, p, prompts, pipeline.Style(a.settings.Style), bf.archive, gen.open)
		},
	}

	gen.register(cmd.Flags(), true)
	cmd.Flags().StringVarP(&bf.file, "file", "f", "", `read prompts from a file, one per line ("-" for stdin)`)
	cmd.Flags().BoolVar(&bf.examples, "examples", false, "include the built-in example prompts")
	cmd.Flags().StringVar(&bf.archive, "archive", "", "also bundle the generated images into this .tar.xz file")
	return cmd
}

func promptsFromFile(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return readPrompts(cmd.InOrStdin())
	}
	f, err := os.Open(path) // #nosec G304 - user-specified prompt file
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt file: %w", err)
	}
	defer f.Close()
	return readPrompts(f)
}

// runBatch generates every prompt, saving each success, and prints the
// tally. It fails only when no prompt succeeded.
func runBatch(cmd *cobra.Command, a *app, p *pipeline.Pipeline, prompts []string, style pipeline.Style, archive string, open bool) error {
	total := len(prompts)
	a.printf("Starting batch generation of %d images...\n", total)

	paths := make([]string, total)
	outcomes, summary := p.Batch(cmd.Context(), prompts, pipeline.BatchOptions{
		Request: a.request("", style),
		OnResult: func(i int, res *pipeline.Result) error {
			path, err := a.writer.Save(res.Image, string(res.Style))
			paths[i] = path
			return err
		},
	})

	var saved []string
	for _, o := range outcomes {
		a.printf("\n[%d/%d] Processing: %q\n", o.Index+1, total, truncate(o.Prompt, 50))
		if !o.OK() {
			a.printf("✗ Failed: %v\n", o.Err)
			continue
		}
		path := paths[o.Index]
		saved = append(saved, path)
		a.report(path, o.Result)
		if open {
			a.openResult(path)
		}
	}

	a.printf("\nBatch generation complete!\n")
	a.printf("Successful: %d/%d\n", summary.Succeeded, summary.Total)

	if archive != "" && len(saved) > 0 {
		if err := output.Archive(archive, saved); err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		entries, err := output.ListArchive(archive)
		if err != nil {
			return fmt.Errorf("failed to verify archive: %w", err)
		}
		if len(entries) != len(saved) {
			return fmt.Errorf("archive %s holds %d entries, expected %d", archive, len(entries), len(saved))
		}
		var size int64
		for _, e := range entries {
			size += e.Size
		}
		a.printf("✓ Archived %d images (%.1f KB) to: %s\n", len(entries), float64(size)/1024, archive)
	}

	if summary.Succeeded == 0 {
		return fmt.Errorf("batch failed: %s", summary)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
