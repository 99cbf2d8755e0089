package backend

import (
	"bytes"
	"os/exec"
	"time"
)

// runShell executes argv (an interpreter invocation in which the caller has
// already wrapped the task's command in sh -c / powershell -Command as
// appropriate), captures stdout/stderr in full, and enforces
// timeout by killing the process group when one is set. It never inspects
// the shell's own exit code for retry purposes: a non-zero exit is reported
// as a normal Result, not an error, per spec.md §4.8.
func runShell(backendName string, argv []string, cwd string, timeout *time.Duration) (Result, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cwd
	setSetpgid(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, &SpawnError{Backend: backendName, Err: err}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	if timeout != nil {
		select {
		case err := <-done:
			return resultFromWait(stdout.String(), stderr.String(), err, backendName)
		case <-time.After(*timeout):
			_ = killProcessGroup(cmd)
			<-done // reap; exit status is irrelevant once timed out
			return Result{}, &TimeoutError{Backend: backendName, Timeout: *timeout}
		}
	}

	err := <-done
	return resultFromWait(stdout.String(), stderr.String(), err, backendName)
}

func resultFromWait(stdout, stderr string, err error, backendName string) (Result, error) {
	if err == nil {
		return Result{Stdout: stdout, Stderr: stderr, ExitCode: 0}, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return Result{Stdout: stdout, Stderr: stderr, ExitCode: exitErr.ExitCode()}, nil
	}
	return Result{}, &WaitError{Backend: backendName, Err: err}
}
