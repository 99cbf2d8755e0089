package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalAppliesDefaults(t *testing.T) {
	raw := []byte(`
name: demo
tasks:
  - name: a
    run: echo hi
`)
	p, err := Unmarshal("demo.yaml", raw)
	require.NoError(t, err)
	assert.Equal(t, DefaultConcurrency, p.Concurrency)
	assert.Equal(t, DefaultBackend, p.Tasks[0].Backend)
	assert.False(t, p.StopOnFail)
	assert.Equal(t, 0, p.Tasks[0].Retries)
}

func TestUnmarshalPreservesExplicitValues(t *testing.T) {
	raw := []byte(`
concurrency: 8
stop_on_fail: true
tasks:
  - name: a
    run: echo hi
    backend: container
    retries: 3
    timeout: 30
    continue_on_fail: true
`)
	p, err := Unmarshal("demo.yaml", raw)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Concurrency)
	assert.True(t, p.StopOnFail)

	task, ok := p.TaskByName("a")
	require.True(t, ok)
	assert.Equal(t, "container", task.EffectiveBackend())
	assert.Equal(t, 3, task.Retries)
	require.NotNil(t, task.TimeoutSeconds)
	assert.Equal(t, 30, *task.TimeoutSeconds)
	assert.True(t, task.ContinueOnFail)
}

func TestUnmarshalInvalidYAMLReturnsParseErr(t *testing.T) {
	_, err := Unmarshal("demo.yaml", []byte("tasks: [this is not valid: ["))
	require.Error(t, err)
	var parseErr *ParseErr
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseMissingFileReturnsIOErr(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	var ioErr *IOErr
	assert.ErrorAs(t, err, &ioErr)
}

func TestParseReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - name: a\n    run: echo hi\n"), 0o644))

	p, err := Parse(path)
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 1)
}
