package backend

import (
	"context"
	"runtime"
	"time"
)

// Local runs a task's command directly on the host shell: sh -c on POSIX,
// powershell.exe -Command on Windows.
type Local struct{}

func (l *Local) Run(_ context.Context, command string, cwd string, timeout *time.Duration) (Result, error) {
	var argv []string
	if runtime.GOOS == "windows" {
		argv = []string{"powershell.exe", "-NoProfile", "-Command", command}
	} else {
		argv = []string{"sh", "-c", command}
	}
	return runShell("local", argv, cwd, timeout)
}
