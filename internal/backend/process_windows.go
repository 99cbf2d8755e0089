//go:build windows
// +build windows

package backend

/**
 * Windows has no POSIX process groups; timeout handling instead kills the
 * single process via (*os.Process).Kill.
 */

import "os/exec"

func setSetpgid(cmd *exec.Cmd) {}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func processNotFoundErr(err error) bool {
	return false
}
