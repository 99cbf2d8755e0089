package backend

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Remote shells out to the platform SSH client. cwd is ignored: the remote
// working directory is whatever the remote login shell sets, and there is no
// portable way to force it from the client side without assuming a shell.
type Remote struct{}

func (r *Remote) Run(_ context.Context, command string, _ string, timeout *time.Duration) (Result, error) {
	host := os.Getenv("RUSTYPIPE_REMOTE_HOST")
	if host == "" {
		return Result{}, &SpawnError{Backend: "remote", Err: fmt.Errorf("RUSTYPIPE_REMOTE_HOST is not set")}
	}
	target := host
	if user := os.Getenv("RUSTYPIPE_REMOTE_USER"); user != "" {
		target = user + "@" + host
	}

	argv := []string{"ssh"}
	if port := os.Getenv("RUSTYPIPE_REMOTE_PORT"); port != "" {
		argv = append(argv, "-p", port)
	}
	if key := os.Getenv("RUSTYPIPE_REMOTE_KEY"); key != "" {
		argv = append(argv, "-i", key)
	}
	argv = append(argv, "-o", "BatchMode=yes", "-o", "ConnectTimeout=10")
	argv = append(argv, extraArgs("RUSTYPIPE_REMOTE_ARGS")...)
	argv = append(argv, target, "sh", "-lc", command)

	return runShell("remote", argv, "", timeout)
}
