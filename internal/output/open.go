package output

import (
	"fmt"
	"path/filepath"
)

// Open shows path in the platform's default image viewer. It returns once
// the viewer has been launched and does not wait for it to exit.
func Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	cmd, err := openCommand(abs)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch viewer: %w", err)
	}
	return cmd.Process.Release()
}
