// Package backend implements components C3/C4: the execution-backend
// interface and its four concrete variants (local, container, remote,
// cluster), plus the selector-to-implementation dispatch table.
package backend

import (
	"context"
	"fmt"
	"time"
)

// Result is what a Backend returns for a single attempt at running a task.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Backend runs a single shell command to completion (or until timeout) and
// reports its captured output and exit code. Implementations never retry;
// retry policy lives one layer up, in the task runner.
type Backend interface {
	Run(ctx context.Context, cmd string, cwd string, timeout *time.Duration) (Result, error)
}

// SpawnError wraps a failure to start the underlying process (missing
// binary, bad PATH, permission denied). It is the only class of error the
// task runner's retry loop treats as retryable, together with WaitError and
// TimeoutError.
type SpawnError struct {
	Backend string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: spawn failed: %v", e.Backend, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// WaitError wraps a failure waiting on an already-started process that is
// not an ordinary non-zero exit (a pipe broke, the process was reaped out
// from under us, and so on).
type WaitError struct {
	Backend string
	Err     error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("%s: wait failed: %v", e.Backend, e.Err)
}

func (e *WaitError) Unwrap() error { return e.Err }

// TimeoutError reports that a task's deadline elapsed before the command
// finished; the backend has already killed the process (group).
type TimeoutError struct {
	Backend string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s", e.Backend, e.Timeout)
}

// Resolve returns the Backend implementation for the given selector. An
// empty or unrecognized selector falls back to "local", per spec.md §4.7/§9:
// the backend set is closed, and dispatch is a lookup, never a branch tree
// scattered through the caller.
func Resolve(selector string) Backend {
	switch selector {
	case "container":
		return &Container{}
	case "remote":
		return &Remote{}
	case "cluster":
		return &Cluster{}
	case "local", "":
		return &Local{}
	default:
		return &Local{}
	}
}
