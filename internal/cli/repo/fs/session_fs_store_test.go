package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFSStore_SaveLoadClear(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store := SessionFSStore{}

	_, err := store.Load()
	assert.Error(t, err, "нет файла - нет токена")

	require.NoError(t, store.Save("abc-123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.Error(t, err)

	// повторная очистка не должна падать
	require.NoError(t, store.Clear())
}
