package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnError(t *testing.T) {
	original := errors.New("exec: \"srsepc\": executable file not found in $PATH")
	err := error(&SpawnError{Role: RoleCoreNetwork, Original: original})

	assert.ErrorIs(t, err, ErrSpawn)
	assert.NotErrorIs(t, err, ErrSignal)
	assert.Contains(t, err.Error(), "CORE_NETWORK")
	assert.Contains(t, err.Error(), "executable file not found")

	// Wrapping survives another layer.
	wrapped := fmt.Errorf("start failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrSpawn)

	var spawnErr *SpawnError
	require.ErrorAs(t, wrapped, &spawnErr)
	assert.Equal(t, RoleCoreNetwork, spawnErr.Role)
}

func TestSignalError(t *testing.T) {
	err := error(&SignalError{Role: RoleRadioNode, PID: 4321, Original: errors.New("operation not permitted")})

	assert.ErrorIs(t, err, ErrSignal)
	assert.NotErrorIs(t, err, ErrSpawn)
	assert.Contains(t, err.Error(), "RADIO_NODE")
	assert.Contains(t, err.Error(), "4321")
}
