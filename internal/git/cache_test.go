package git

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")

	mc := openMessageCacheAt(path)
	mc.Put("abc123", "first subject")
	mc.Put("def456", "second subject")
	require.NoError(t, mc.Save())

	reloaded := openMessageCacheAt(path)
	got, ok := reloaded.Get("abc123")
	require.True(t, ok)
	assert.Equal(t, "first subject", got)
	assert.Equal(t, 2, reloaded.Len())
}

func TestMessageCacheMissingFile(t *testing.T) {
	mc := openMessageCacheAt(filepath.Join(t.TempDir(), "absent.json"))
	_, ok := mc.Get("abc123")
	assert.False(t, ok)
	assert.Equal(t, 0, mc.Len())
}

func TestMessageCacheSaveSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	mc := openMessageCacheAt(path)

	// Nothing recorded, nothing written.
	require.NoError(t, mc.Save())
	assert.NoFileExists(t, path)

	mc.Put("abc", "msg")
	require.NoError(t, mc.Save())
	assert.FileExists(t, path)

	// Re-putting the identical value does not mark the cache dirty.
	mc.Put("abc", "msg")
	require.NoError(t, mc.Save())
}
