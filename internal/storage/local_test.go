package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStorage(filepath.Join(dir, "media"), "/media")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "abc.jpg", "image/jpeg", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, "/media/abc.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "media", "abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	require.NoError(t, store.Delete(context.Background(), "abc.jpg"))
	_, err = os.Stat(filepath.Join(dir, "media", "abc.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing blob is a no-op.
	assert.NoError(t, store.Delete(context.Background(), "missing.jpg"))
}
