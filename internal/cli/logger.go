package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// logLevel resolves the effective level: --verbose wins, then --quiet,
// then the configured level.
func logLevel(configured string, verbose, quiet bool) hclog.Level {
	switch {
	case verbose:
		return hclog.Debug
	case quiet:
		return hclog.Error
	}
	if lvl := hclog.LevelFromString(configured); lvl != hclog.NoLevel {
		return lvl
	}
	return hclog.Info
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	if level == hclog.Off {
		w = io.Discard
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "promptpaint",
		Output: w,
		Level:  level,
	})
}
