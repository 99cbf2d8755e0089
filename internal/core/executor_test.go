package core

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arekkusul/Rustypipe/internal/pipeline"
)

func newExecutor(t *testing.T, p *pipeline.Pipeline) *Executor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tasks below use POSIX shell commands")
	}
	return &Executor{
		Pipeline: p,
		DocDir:   t.TempDir(),
		RunBase:  t.TempDir(),
		Vars:     map[string]string{},
		Logger:   hclog.NewNullLogger(),
	}
}

func TestExecutorLinearChain(t *testing.T) {
	p := &pipeline.Pipeline{
		Concurrency: 4,
		Tasks: []pipeline.TaskDef{
			{Name: "a", Run: "echo hello"},
			{Name: "b", DependsOn: []string{"a"}, Run: "echo {{a.output}} world"},
		},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	runDir, results, err := exec.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "a", results[0].Task)
	assert.Equal(t, "b", results[1].Task)
	assert.Equal(t, "hello world\n", results[1].Stdout)

	for _, name := range []string{"a", "b"} {
		matches, _ := filepath.Glob(filepath.Join(runDir, name+"_*.log"))
		assert.Len(t, matches, 1)
		matches, _ = filepath.Glob(filepath.Join(runDir, name+"_*.json"))
		assert.Len(t, matches, 1)
	}
}

func TestExecutorDiamond(t *testing.T) {
	p := &pipeline.Pipeline{
		Concurrency: 2,
		Tasks: []pipeline.TaskDef{
			{Name: "a", Run: "echo a"},
			{Name: "b", DependsOn: []string{"a"}, Run: "echo b"},
			{Name: "c", DependsOn: []string{"a"}, Run: "echo c"},
			{Name: "d", DependsOn: []string{"b", "c"}, Run: "echo d"},
		},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	_, results, err := exec.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "a", results[0].Task)
	assert.Equal(t, "d", results[3].Task)
}

func TestExecutorStopOnFailBlocksDependents(t *testing.T) {
	p := &pipeline.Pipeline{
		Concurrency: 4,
		StopOnFail:  true,
		Tasks: []pipeline.TaskDef{
			{Name: "a", Run: "false"},
			{Name: "b", DependsOn: []string{"a"}, Run: "echo never"},
		},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	runDir, results, err := exec.Run(context.Background())
	require.Error(t, err)
	var aborted *PipelineAbortedErr
	require.ErrorAs(t, err, &aborted)
	assert.Equal(t, "a", aborted.Task)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Task)

	matches, _ := filepath.Glob(filepath.Join(runDir, "b_*.log"))
	assert.Empty(t, matches)
}

func TestExecutorContinueOnFailOverridesStopOnFail(t *testing.T) {
	p := &pipeline.Pipeline{
		Concurrency: 4,
		StopOnFail:  true,
		Tasks: []pipeline.TaskDef{
			{Name: "a", Run: "false", ContinueOnFail: true},
			{Name: "b", DependsOn: []string{"a"}, Run: "echo still runs"},
		},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	_, results, err := exec.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestExecutorUnknownTokenStripped(t *testing.T) {
	p := &pipeline.Pipeline{
		Concurrency: 1,
		Tasks:       []pipeline.TaskDef{{Name: "t", Run: "echo x{{nope.output}}y"}},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	_, results, err := exec.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "xy\n", results[0].Stdout)
	assert.Equal(t, "echo xy", results[0].Command)
}

func TestExecutorTimeoutAndRetry(t *testing.T) {
	if testing.Short() {
		t.Skip("exercises real sleep/timeout durations")
	}
	timeout := 1
	p := &pipeline.Pipeline{
		Concurrency: 1,
		StopOnFail:  true,
		Tasks: []pipeline.TaskDef{
			{Name: "t", Run: "sleep 10", TimeoutSeconds: &timeout, Retries: 2},
		},
	}
	p.ApplyDefaults()

	exec := newExecutor(t, p)
	_, _, err := exec.Run(context.Background())
	require.Error(t, err)
	var aborted *PipelineAbortedErr
	require.ErrorAs(t, err, &aborted)
	assert.Equal(t, "t", aborted.Task)
}

