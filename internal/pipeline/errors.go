package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrompt is returned when the prompt is blank after trimming.
	ErrEmptyPrompt = errors.New("empty prompt")
	// ErrUnknownStyle is returned for a style selector that is not recognised.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidSize is returned for non-positive or oversized dimensions.
	ErrInvalidSize = errors.New("invalid image size")
)

// Stage names a step of the generation pipeline.
type Stage string

const (
	StageTheme   Stage = "theme"
	StagePattern Stage = "pattern"
	StageCaption Stage = "caption"
	StageEffect  Stage = "effect"
)

// RenderError reports that a drawing or filter stage could not produce an image.
type RenderError struct {
	Stage Stage
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// run executes fn as stage, converting both returned errors and panics
// into a *RenderError.
func run(stage Stage, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := fn(); err != nil {
		return &RenderError{Stage: stage, Err: err}
	}
	return nil
}
