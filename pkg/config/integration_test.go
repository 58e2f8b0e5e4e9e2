package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectconf/sectconf/pkg/testutil"
)

// End-to-end against the real filesystem: register, write, reopen, read.
func TestRegisterRoundTripOnDisk(t *testing.T) {
	dir := testutil.ConfigDir(t)

	cfg, err := Register("example")
	require.NoError(t, err)
	require.NoError(t, cfg.Section("example").Set("name", "Foo"))
	require.NoError(t, cfg.Section("example").Set("value", 69))
	require.NoError(t, cfg.Section("api").Set("abc", nil))

	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "example.ini")))

	// A second registration opens the same file and sees the same data
	reopened, err := Register("example")
	require.NoError(t, err)

	name, ok := reopened.Section("example").Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Foo", name)

	value, ok := reopened.Section("example").Get("value")
	assert.True(t, ok)
	assert.Equal(t, "69", value)

	_, ok = reopened.Section("api").Get("abc")
	assert.False(t, ok)

	content := testutil.ReadFile(t, filepath.Join(dir, "example.ini"))
	assert.Contains(t, content, "[example]")
	assert.Contains(t, content, "[api]")
	assert.Contains(t, content, "None")
}

func TestWriteIdempotenceOnDisk(t *testing.T) {
	dir := testutil.ConfigDir(t)
	path := filepath.Join(dir, "example.ini")

	cfg, err := Register("example")
	require.NoError(t, err)

	require.NoError(t, cfg.Section("example").Set("name", "Foo"))
	first := testutil.ReadFile(t, path)

	require.NoError(t, cfg.Section("example").Set("name", "Foo"))
	second := testutil.ReadFile(t, path)

	assert.Equal(t, first, second)
}
