package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/promptpaint/internal/pipeline"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuStyle  = lipgloss.NewStyle().PaddingLeft(2)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// errInputClosed signals that stdin ended before a menu answer was given.
var errInputClosed = errors.New("input closed")

func newInteractiveCmd(root *rootFlags) *cobra.Command {
	gen := &genFlags{}

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Choose what to generate from a menu",
		Long: `Start a menu-driven session: generate from an example prompt, enter a prompt
and style, batch generate the examples, or compare one prompt across styles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, gen)
			if err != nil {
				return err
			}
			s := &session{
				cmd:  cmd,
				app:  a,
				in:   bufio.NewScanner(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
				open: gen.open,
				// piped answers are not echoed by a terminal
				echo: !isTerminal(cmd.InOrStdin()),
			}
			if s.echo {
				a.logger.Debug("reading menu answers from non-terminal input")
			}
			err = s.run()
			if errors.Is(err, errInputClosed) {
				fmt.Fprintln(s.out, "\nGeneration cancelled by user")
				return nil
			}
			return err
		},
	}

	gen.register(cmd.Flags(), false)
	return cmd
}

// session is one pass through the interactive menu.
type session struct {
	cmd  *cobra.Command
	app  *app
	in   *bufio.Scanner
	out  io.Writer
	open bool
	echo bool
}

func (s *session) ask(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	answer := strings.TrimSpace(s.in.Text())
	if s.echo {
		fmt.Fprintln(s.out, answer)
	}
	return answer, nil
}

func (s *session) run() error {
	fmt.Fprintln(s.out, titleStyle.Render("promptpaint"))
	fmt.Fprintln(s.out, hintStyle.Render("Themed procedural artwork, fully offline"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose an option:")
	fmt.Fprintln(s.out, menuStyle.Render(strings.Join([]string{
		"1. Generate from example prompts",
		"2. Enter your own prompt",
		"3. Batch generate examples",
		"4. Style comparison (same prompt, different styles)",
	}, "\n")))

	choice, err := s.ask("\nEnter choice (1-4): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		err = s.fromExample()
	case "2":
		err = s.fromPrompt()
	case "3":
		err = s.batchExamples()
	case "4":
		err = s.compare()
	default:
		fmt.Fprintln(s.out, "✗ Invalid choice")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nCheck the '%s' folder for your generated images!\n", s.app.settings.OutputDir)
	return nil
}

func (s *session) fromExample() error {
	fmt.Fprintln(s.out, "\nExample prompts:")
	for i, p := range examplePrompts {
		fmt.Fprintf(s.out, "%2d. %s\n", i+1, p)
	}
	answer, err := s.ask(fmt.Sprintf("\nChoose prompt (1-%d): ", len(examplePrompts)))
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		fmt.Fprintln(s.out, "✗ Please enter a valid number")
		return nil
	}
	if n < 1 || n > len(examplePrompts) {
		fmt.Fprintln(s.out, "✗ Invalid selection")
		return nil
	}
	return s.generate(examplePrompts[n-1], "")
}

// styleMenu maps the style answers; anything else means auto.
var styleMenu = map[string]pipeline.Style{
	"1": pipeline.StyleAuto,
	"2": pipeline.StyleGradient,
	"3": pipeline.StyleAbstract,
	"4": pipeline.StyleGeometric,
}

func (s *session) fromPrompt() error {
	prompt, err := s.ask("\nEnter your prompt: ")
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Fprintln(s.out, "✗ Prompt cannot be empty")
		return nil
	}

	fmt.Fprintln(s.out, "\nChoose style:")
	fmt.Fprintln(s.out, menuStyle.Render("1. Auto (random)\n2. Gradient\n3. Abstract\n4. Geometric"))
	answer, err := s.ask("Style (1-4): ")
	if err != nil {
		return err
	}
	style, ok := styleMenu[answer]
	if !ok {
		style = pipeline.StyleAuto
	}
	return s.generate(prompt, style)
}

func (s *session) generate(prompt string, style pipeline.Style) error {
	p, err := s.app.pipelineFor(prompt)
	if err != nil {
		return err
	}
	s.app.printf("\nGenerating image for: %q\n", prompt)
	res, err := p.Generate(s.app.request(prompt, style))
	if err != nil {
		s.app.printf("✗ Error generating image: %v\n", err)
		return nil
	}
	path, err := s.app.save(res)
	if err != nil {
		s.app.printf("✗ Error saving image: %v\n", err)
		return nil
	}
	if s.open {
		s.app.openResult(path)
	}
	return nil
}

func (s *session) batchExamples() error {
	p, err := s.app.pipelineFor(examplePrompts...)
	if err != nil {
		return err
	}
	if err := runBatch(s.cmd, s.app, p, examplePrompts, "", "", s.open); err != nil {
		s.app.printf("✗ %v\n", err)
	}
	return nil
}

func (s *session) compare() error {
	prompt, err := s.ask("\nEnter prompt for style comparison: ")
	if err != nil {
		return err
	}
	if prompt == "" {
		fmt.Fprintln(s.out, "✗ Prompt cannot be empty")
		return nil
	}
	p, err := s.app.pipelineFor(prompt)
	if err != nil {
		return err
	}
	if err := runCompare(s.app, p, prompt, s.open); err != nil {
		s.app.printf("✗ %v\n", err)
	}
	return nil
}
