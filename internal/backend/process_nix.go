//go:build !windows
// +build !windows

package backend

/**
 * Process-group handling is based on the technique in
 * github.com/vercel/turbo's cli/internal/process/sys_nix.go (itself adapted
 * from hashicorp/consul-template), generalized here from a supervised
 * long-lived child to a single-shot command with a deadline.
 */

import (
	"os/exec"
	"syscall"
)

// setSetpgid puts the child in its own process group so a timeout can kill
// the whole group (the command's own children included) rather than just
// the immediate child.
func setSetpgid(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup sends SIGKILL to the process group rooted at cmd's pid.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

func processNotFoundErr(err error) bool {
	return err == syscall.ESRCH
}
