// Package core implements components C7/C8: the DAG executor/scheduler
// driver loop and the per-task runner it dispatches.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"

	"github.com/Arekkusul/Rustypipe/internal/artifact"
	"github.com/Arekkusul/Rustypipe/internal/pipeline"
	"github.com/Arekkusul/Rustypipe/internal/signals"
	"github.com/Arekkusul/Rustypipe/internal/util"
)

// Result is one entry of the final ordered report printed after a run.
type Result struct {
	Task    string
	Command string
	Stdout  string
	Stderr  string
}

// Executor drives a single pipeline run to completion or abort.
type Executor struct {
	Pipeline *pipeline.Pipeline
	DocDir   string // directory the pipeline document lives in; passed to backends as cwd
	RunBase  string // base directory under which run artifacts are written
	Vars     map[string]string
	Logger   hclog.Logger

	// Watcher, if non-nil, is consulted at each completion boundary for a
	// one-shot cooperative shutdown request. It never cancels in-flight work.
	Watcher *signals.Watcher
}

// Run executes the pipeline and returns the run directory, the ordered
// per-task results, and a non-nil error only on *PipelineAbortedErr or a
// setup failure (run-directory creation).
func (e *Executor) Run(ctx context.Context) (string, []Result, error) {
	g := buildGraph(e.Pipeline)

	runDir, err := artifact.CreateRunDir(e.RunBase)
	if err != nil {
		return "", nil, err
	}
	if doc, mErr := yaml.Marshal(e.Pipeline); mErr == nil {
		_ = artifact.WriteArtifact(runDir, "pipeline.yaml", doc)
	}

	sem := semaphore.NewWeighted(int64(e.Pipeline.Concurrency))

	var outputsMu sync.Mutex
	outputs := make(map[string]string, len(e.Pipeline.Tasks))

	// inFlight tracks dispatched-but-not-yet-completed task names. It is
	// read only for observability/debugging; pending below is authoritative
	// for the loop's termination condition.
	inFlight := util.SetFromStrings(nil)
	var inFlightMu sync.Mutex

	resultCh := make(chan taskResult)
	pending := 0

	dispatch := func(name string) {
		t := *g.byName[name]

		inFlightMu.Lock()
		inFlight.Add(name)
		inFlightMu.Unlock()
		pending++

		go func() {
			if acqErr := sem.Acquire(ctx, 1); acqErr != nil {
				resultCh <- taskResult{Task: t.Name, Err: acqErr}
				return
			}
			defer sem.Release(1)

			outputsMu.Lock()
			snapshot := make(map[string]string, len(outputs))
			for k, v := range outputs {
				snapshot[k] = v
			}
			outputsMu.Unlock()

			resultCh <- runTask(ctx, t, e.DocDir, snapshot, e.Vars, e.Logger)
		}()
	}

	for _, name := range g.readySet() {
		dispatch(name)
	}

	var ordered []Result
	shuttingDown := false

	for pending > 0 {
		res := <-resultCh
		pending--

		inFlightMu.Lock()
		inFlight.Delete(res.Task)
		inFlightMu.Unlock()

		exitCode := res.ExitCode
		failed := res.Err != nil || exitCode != 0

		writeArtifacts(runDir, res, e.Logger)

		if res.Err == nil {
			outputsMu.Lock()
			outputs[res.Task] = res.Stdout
			outputsMu.Unlock()
		}

		ordered = append(ordered, Result{
			Task:    res.Task,
			Command: res.Command,
			Stdout:  res.Stdout,
			Stderr:  res.Stderr,
		})

		if failed {
			t := g.byName[res.Task]
			if e.Pipeline.StopOnFail && !t.ContinueOnFail {
				printResults(ordered)
				return runDir, ordered, &PipelineAbortedErr{Task: res.Task, ExitCode: exitCode, Cause: res.Err}
			}
		}

		if e.Watcher != nil {
			select {
			case <-e.Watcher.Done():
				shuttingDown = true
			default:
			}
		}

		for _, freed := range g.decrement(res.Task) {
			if shuttingDown {
				continue
			}
			dispatch(freed)
		}
	}

	printResults(ordered)
	return runDir, ordered, nil
}

// printResults writes the final ordered report to stdout, one block per
// task, with the stderr line (when non-empty) on stderr instead.
func printResults(results []Result) {
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "Task: %s\n", r.Task)
		fmt.Fprintf(os.Stdout, "Command: %s\n", r.Command)
		fmt.Fprintf(os.Stdout, "Output: %s\n", strings.TrimSpace(r.Stdout))
		if errText := strings.TrimSpace(r.Stderr); errText != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errText)
		}
		fmt.Fprintln(os.Stdout)
	}
}

// manifest is the JSON shape written alongside each task's log artifact.
type manifest struct {
	Task      string `json:"task"`
	Command   string `json:"command"`
	ExitCode  *int   `json:"exit_code"`
	Timestamp string `json:"timestamp"`
}

func writeArtifacts(runDir string, res taskResult, logger hclog.Logger) {
	now := time.Now()
	ts := artifact.Timestamp(now)
	safe := artifact.Sanitize(res.Task)

	var exitCode *int
	exitDisplay := "null"
	if res.Err == nil {
		c := res.ExitCode
		exitCode = &c
		exitDisplay = fmt.Sprintf("%d", c)
	}

	logBody := "Task: " + res.Task + "\n" +
		"Cmd: " + res.Command + "\n" +
		"Exit: " + exitDisplay + "\n" +
		"Stdout:\n" + res.Stdout + "\n" +
		"Stderr:\n" + res.Stderr + "\n"

	var writeErrs *multierror.Error
	if err := artifact.WriteArtifact(runDir, safe+"_"+ts+".log", []byte(logBody)); err != nil {
		writeErrs = multierror.Append(writeErrs, err)
	}

	meta, err := json.Marshal(manifest{
		Task:      res.Task,
		Command:   res.Command,
		ExitCode:  exitCode,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		writeErrs = multierror.Append(writeErrs, err)
	} else if werr := artifact.WriteArtifact(runDir, safe+"_"+ts+".json", meta); werr != nil {
		writeErrs = multierror.Append(writeErrs, werr)
	}

	if writeErrs.ErrorOrNil() != nil {
		logger.Warn("failed to write task artifacts", "task", res.Task, "error", writeErrs)
	}
}
