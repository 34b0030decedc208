// Package output writes generated images to disk: file naming, output
// directory creation, PNG encoding, batch archives and opening results in
// the platform viewer.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is the output directory used when none is configured.
const DefaultDir = "generated_images"

// timestampLayout renders as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// maxCollisions bounds the _2, _3, ... suffix search.
const maxCollisions = 1000

// WriteError reports that an image could not be saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer saves images into Dir, naming them by style and time.
type Writer struct {
	Dir string
	// Now returns the timestamp used in file names; time.Now when nil.
	Now func() time.Time
}

// NewWriter creates a Writer for dir, or DefaultDir when dir is empty.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{Dir: dir, Now: time.Now}
}

// Filename returns local_generated_{style}_{YYYYMMDD_HHMMSS}.png for t.
func Filename(style string, t time.Time) string {
	return fmt.Sprintf("local_generated_%s_%s.png", style, t.Format(timestampLayout))
}

// Save encodes img as PNG into the output directory, creating it on
// demand. When the timestamped name is already taken, _2, _3, ... is
// appended before the extension. It returns the written path; every
// failure is a *WriteError.
func (w *Writer) Save(img image.Image, style string) (string, error) {
	if img == nil {
		return "", &WriteError{Path: w.Dir, Err: errors.New("no image to write")}
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil { // #nosec G301 - output directory is user facing
		return "", &WriteError{Path: w.Dir, Err: err}
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	name := Filename(style, now())
	base := name[:len(name)-len(filepath.Ext(name))]

	for i := 1; i <= maxCollisions; i++ {
		candidate := name
		if i > 1 {
			candidate = fmt.Sprintf("%s_%d.png", base, i)
		}
		path := filepath.Join(w.Dir, candidate)

		// O_EXCL claims the name atomically
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 - path built from output dir
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		return path, encode(f, path, img)
	}
	return "", &WriteError{Path: filepath.Join(w.Dir, name), Err: errors.New("too many files with the same timestamp")}
}

func encode(f *os.File, path string, img image.Image) error {
	encErr := png.Encode(f, img)
	closeErr := f.Close()
	if encErr != nil {
		_ = os.Remove(path)
		return &WriteError{Path: path, Err: fmt.Errorf("failed to encode png: %w", encErr)}
	}
	if closeErr != nil {
		return &WriteError{Path: path, Err: closeErr}
	}
	return nil
}
