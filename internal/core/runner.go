package core

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/Arekkusul/Rustypipe/internal/backend"
	"github.com/Arekkusul/Rustypipe/internal/interpolate"
	"github.com/Arekkusul/Rustypipe/internal/pipeline"
)

// taskResult is what a task runner reports back to the executor's driver
// loop. Err is set only when every attempt (initial plus retries) failed at
// the run level (spawn/wait/timeout); a completed run with a non-zero exit
// status is reported as a normal result with ExitCode set, never as Err.
type taskResult struct {
	Task     string
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// runTask interpolates t.Run against the given snapshots, dispatches it to
// the task's backend, and retries run-level failures up to t.Retries times
// with no backoff delay between attempts (backoff.WithMaxRetries is reused
// here purely for the "one initial + up to t.Retries more" attempt
// bookkeeping, not for its
// exponential-backoff behavior).
func runTask(ctx context.Context, t pipeline.TaskDef, cwd string, outputs, vars map[string]string, logger hclog.Logger) taskResult {
	cmd := interpolate.Interpolate(t.Run, outputs, vars)
	b := backend.Resolve(t.EffectiveBackend())

	var timeout *time.Duration
	if t.TimeoutSeconds != nil {
		d := time.Duration(*t.TimeoutSeconds) * time.Second
		timeout = &d
	}

	var result backend.Result
	attempt := 0
	op := func() error {
		attempt++
		res, err := b.Run(ctx, cmd, cwd, timeout)
		if err != nil {
			logger.Warn("task attempt failed", "task", t.Name, "attempt", attempt, "backend", t.EffectiveBackend(), "error", err)
			return err
		}
		result = res
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(0), uint64(t.Retries))
	if err := backoff.Retry(op, policy); err != nil {
		return taskResult{Task: t.Name, Command: cmd, Err: err}
	}

	return taskResult{
		Task:     t.Name,
		Command:  cmd,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: result.ExitCode,
	}
}
