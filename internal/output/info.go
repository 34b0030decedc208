package output

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"
)

// FileInfo describes a saved image.
type FileInfo struct {
	Path    string
	AbsPath string
	Bytes   int64
	Width   int
	Height  int
}

// SizeKB returns the file size in kilobytes.
func (fi FileInfo) SizeKB() float64 {
	return float64(fi.Bytes) / 1024
}

// Stat reports the location, size and dimensions of a saved image.
func Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return FileInfo{}, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	f, err := os.Open(path) // #nosec G304 - reading back an image this program wrote
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to decode image config: %w", err)
	}

	return FileInfo{
		Path:    path,
		AbsPath: abs,
		Bytes:   info.Size(),
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}
