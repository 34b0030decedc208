//go:build !unix && !windows

package output

import (
	"fmt"
	"os/exec"
	"runtime"
)

func openCommand(string) (*exec.Cmd, error) {
	return nil, fmt.Errorf("opening files is not supported on %s", runtime.GOOS)
}
