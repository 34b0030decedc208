//go:build unix && !darwin

package output

import "os/exec"

func openCommand(path string) (*exec.Cmd, error) {
	return exec.Command("xdg-open", path), nil // #nosec G204 - path is a file this program wrote
}
