//go:build windows

package output

import "os/exec"

func openCommand(path string) (*exec.Cmd, error) {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil // #nosec G204 - path is a file this program wrote
}
