package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSWriteRead(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")

	require.NoError(t, fsys.WriteFile(path, []byte("[example]\nname = Foo\n"), 0644))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[example]\nname = Foo\n", string(data))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestOSWriteOverwrites(t *testing.T) {
	fsys := NewOS()
	path := filepath.Join(t.TempDir(), "app.ini")

	require.NoError(t, fsys.WriteFile(path, []byte("first"), 0644))
	require.NoError(t, fsys.WriteFile(path, []byte("second"), 0644))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// The atomic write must not leave temp files next to the target.
func TestOSWriteLeavesNoDroppings(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")

	require.NoError(t, fsys.WriteFile(path, []byte("data"), 0644))

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "app.ini", entries[0].Name())
}

func TestOSMkdirAllAndRemove(t *testing.T) {
	fsys := NewOS()
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fsys.MkdirAll(dir, 0755))
	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	path := filepath.Join(dir, "x.ini")
	require.NoError(t, fsys.WriteFile(path, nil, 0644))
	require.NoError(t, fsys.Remove(path))
	_, err = fsys.Stat(path)
	assert.Error(t, err)
}
