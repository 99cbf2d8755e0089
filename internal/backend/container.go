package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Container runs a task inside an ephemeral container, mounting cwd as
// /workdir. Image and any extra `container run` flags come from the
// environment, since the pipeline document's backend selector is a bare
// string with no per-backend configuration block.
type Container struct{}

func (c *Container) Run(_ context.Context, command string, cwd string, timeout *time.Duration) (Result, error) {
	image := os.Getenv("RUSTYPIPE_CONTAINER_IMAGE")
	if image == "" {
		return Result{}, &SpawnError{Backend: "container", Err: fmt.Errorf("RUSTYPIPE_CONTAINER_IMAGE is not set")}
	}

	host, err := filepath.Abs(cwd)
	if err != nil {
		return Result{}, &SpawnError{Backend: "container", Err: fmt.Errorf("canonicalize cwd: %w", err)}
	}
	host = containerMountPath(host)

	argv := []string{"container", "run", "--rm", "-w", "/workdir", "-v", host + ":/workdir"}
	argv = append(argv, extraArgs("RUSTYPIPE_CONTAINER_ARGS")...)
	argv = append(argv, image, "sh", "-c", command)

	return runShell("container", argv, cwd, timeout)
}

// containerMountPath adapts a canonicalized host path into a container-visible
// mount path. On Windows it strips the extended-path prefix, lowercases and
// relocates the drive letter (C:\foo -> /c/foo), and flips separators.
func containerMountPath(host string) string {
	if runtime.GOOS != "windows" {
		return host
	}
	return windowsContainerMountPath(host)
}

// windowsContainerMountPath holds the Windows-specific translation on its
// own so it can be exercised by tests on any host OS.
func windowsContainerMountPath(host string) string {
	s := strings.ReplaceAll(host, `\`, "/")
	s = strings.TrimPrefix(s, "//?/")
	s = strings.TrimPrefix(s, "/?/")
	if len(s) >= 2 && s[1] == ':' {
		drive := strings.ToLower(s[:1])
		s = "/" + drive + s[2:]
	}
	return s
}

// extraArgs splits a space-separated environment variable into argv tokens,
// returning nil when unset.
func extraArgs(envVar string) []string {
	raw := strings.TrimSpace(os.Getenv(envVar))
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}
