package backend

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteRunFailsWithoutHostConfigured(t *testing.T) {
	require.NoError(t, os.Unsetenv("RUSTYPIPE_REMOTE_HOST"))

	r := &Remote{}
	_, err := r.Run(context.Background(), "echo hi", "/ignored", nil)
	require.Error(t, err)
	var spawnErr *SpawnError
	assert.ErrorAs(t, err, &spawnErr)
}
