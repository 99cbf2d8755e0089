package backend

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRunFailsWithoutImageConfigured(t *testing.T) {
	require.NoError(t, os.Unsetenv("RUSTYPIPE_CONTAINER_IMAGE"))

	c := &Container{}
	_, err := c.Run(context.Background(), "echo hi", t.TempDir(), nil)
	require.Error(t, err)
	var spawnErr *SpawnError
	assert.ErrorAs(t, err, &spawnErr)
}

func TestWindowsContainerMountPath(t *testing.T) {
	got := windowsContainerMountPath(`\\?\C:\Users\dev\project`)
	assert.Equal(t, "/c/Users/dev/project", got)
}
