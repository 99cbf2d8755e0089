package backend

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRunCapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell command")
	}

	l := &Local{}
	res, err := l.Run(context.Background(), "echo hello world", t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)
}

func TestLocalRunReportsNonZeroExitWithoutError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell command")
	}

	l := &Local{}
	res, err := l.Run(context.Background(), "exit 7", t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, res.ExitCode)
}

func TestLocalRunTimesOut(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell command")
	}

	l := &Local{}
	timeout := 200 * time.Millisecond
	_, err := l.Run(context.Background(), "sleep 5", t.TempDir(), &timeout)
	require.Error(t, err)
	var timeoutErr *TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestResolveFallsBackToLocalForUnknownSelector(t *testing.T) {
	assert.IsType(t, &Local{}, Resolve("something-unknown"))
	assert.IsType(t, &Local{}, Resolve(""))
	assert.IsType(t, &Container{}, Resolve("container"))
	assert.IsType(t, &Remote{}, Resolve("remote"))
	assert.IsType(t, &Cluster{}, Resolve("cluster"))
}
