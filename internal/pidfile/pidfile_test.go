package pidfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteReadRoundtrip(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write("srsepc", 4321))
	assert.True(t, store.Exists("srsepc"))

	pid, err := store.Read("srsepc")
	require.NoError(t, err)
	assert.Equal(t, 4321, pid)
}

func TestStore_WriteCreatesRunDir(t *testing.T) {
	runDir := filepath.Join(t.TempDir(), "run")
	store := NewStore(runDir)

	require.NoError(t, store.Write("srsenb", 99))

	pid, err := store.Read("srsenb")
	require.NoError(t, err)
	assert.Equal(t, 99, pid)
}

func TestStore_WriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Write("srsepc", 1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "srsepc.pid", entries[0].Name())
}

func TestStore_WriteOverwritesExistingRecord(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write("srsepc", 100))
	require.NoError(t, store.Write("srsepc", 200))

	pid, err := store.Read("srsepc")
	require.NoError(t, err)
	assert.Equal(t, 200, pid)
}

func TestStore_ReadMissingRecord(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Read("srsepc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReadMalformedRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "hello\n"},
		{"negative pid", "-5\n"},
		{"zero pid", "0\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(t.TempDir())
			require.NoError(t, os.WriteFile(store.Path("srsepc"), []byte(tt.content), 0644))

			_, err := store.Read("srsepc")
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_ReadTrimsWhitespace(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path("srsenb"), []byte("  777 \n"), 0644))

	pid, err := store.Read("srsenb")
	require.NoError(t, err)
	assert.Equal(t, 777, pid)
}

func TestStore_RemoveMissingRecordIsNoOp(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.NoError(t, store.Remove("srsepc"))
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write("srsepc", 42))
	require.NoError(t, store.Remove("srsepc"))
	assert.False(t, store.Exists("srsepc"))
}
