package pipeline

import (
	"context"
	"fmt"
)

// BatchOptions are shared by every prompt of a batch.
type BatchOptions struct {
	// Request supplies size and style; its Prompt is ignored.
	Request Request
	// OnResult, if set, is called after each successful generation, for
	// example to save the image. A returned error marks that prompt failed.
	OnResult func(index int, res *Result) error
}

// Outcome is the result of one prompt in a batch.
type Outcome struct {
	Index  int
	Prompt string
	Result *Result
	Err    error
}

// OK reports whether the prompt succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// Summary tallies a batch.
type Summary struct {
	Succeeded int
	Total     int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d successful", s.Succeeded, s.Total)
}

// Batch generates each prompt in order. A failing prompt never stops the
// others; once ctx is done the remaining prompts fail with its error.
// One outcome is returned per prompt, in input order.
func (p *Pipeline) Batch(ctx context.Context, prompts []string, opts BatchOptions) ([]Outcome, Summary) {
	outcomes := make([]Outcome, len(prompts))
	summary := Summary{Total: len(prompts)}

	for i, prompt := range prompts {
		o := Outcome{Index: i, Prompt: prompt}
		if err := ctx.Err(); err != nil {
			o.Err = err
			outcomes[i] = o
			continue
		}

		req := opts.Request
		req.Prompt = prompt
		res, err := p.Generate(req)
		if err == nil && opts.OnResult != nil {
			err = opts.OnResult(i, res)
		}
		if err != nil {
			p.logger.Warn("generation failed", "index", i, "prompt", prompt, "error", err)
			o.Err = err
		} else {
			o.Result = res
			summary.Succeeded++
		}
		outcomes[i] = o
	}

	p.logger.Info("batch complete", "summary", summary.String())
	return outcomes, summary
}
