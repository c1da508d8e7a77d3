package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resxcheck/internal/cache"
)

func TestResultCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := cache.NewResultCache(path)
	require.NoError(t, c.Load())

	assert.False(t, c.Fresh("a/Strings.resx", "h1"))
	c.Set("a/Strings.resx", "h1")
	assert.True(t, c.Fresh("a/Strings.resx", "h1"))
	assert.False(t, c.Fresh("a/Strings.resx", "h2"))
	require.NoError(t, c.Save())

	reloaded := cache.NewResultCache(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Fresh("a/Strings.resx", "h1"))

	reloaded.Invalidate("a/Strings.resx")
	assert.False(t, reloaded.Fresh("a/Strings.resx", "h1"))
}

func TestResultCacheMissingFile(t *testing.T) {
	c := cache.NewResultCache(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, c.Load())
}

func TestResultCacheCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	c := cache.NewResultCache(path)
	require.NoError(t, c.Load())
	assert.False(t, c.Fresh("x", "h"))
}

func TestEmptyHashNeverFresh(t *testing.T) {
	c := cache.NewResultCache(filepath.Join(t.TempDir(), "cache.json"))
	c.Set("g", "")
	assert.False(t, c.Fresh("g", ""))
}

func TestGroupHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.resx")
	b := filepath.Join(dir, "b.resx")
	require.NoError(t, os.WriteFile(a, []byte("one"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0644))

	h1 := cache.GroupHash([]string{a, b})
	require.NotEmpty(t, h1)
	assert.Equal(t, h1, cache.GroupHash([]string{a, b}))

	require.NoError(t, os.WriteFile(b, []byte("changed"), 0644))
	assert.NotEqual(t, h1, cache.GroupHash([]string{a, b}))

	// Unreadable files yield an empty hash, which never counts as fresh.
	assert.Empty(t, cache.GroupHash([]string{filepath.Join(dir, "missing.resx")}))
}
