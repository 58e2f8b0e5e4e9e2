package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectconf/sectconf/pkg/paths"
	"github.com/sectconf/sectconf/pkg/testutil"
)

// chdirTemp moves the test into a fresh temp directory so no stray
// sectconf.toml in the working directory leaks into the layering.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(cwd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return dir
}

// unsetenv removes a variable for the test. t.Setenv with an empty value is
// not enough: the env provider treats a present-but-empty variable as set.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, old)
		}
	})
}

func clearSectconfEnv(t *testing.T) {
	t.Helper()
	unsetenv(t, "SECTCONF_CONFIG_DIR")
	unsetenv(t, "SECTCONF_DEFAULT_FORMAT")
	unsetenv(t, "SECTCONF_COLOR")
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearSectconfEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "toml", s.DefaultFormat)
	assert.True(t, s.Color)
	assert.Empty(t, s.ConfigDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	clearSectconfEnv(t)
	t.Setenv("SECTCONF_DEFAULT_FORMAT", "json")
	t.Setenv("SECTCONF_COLOR", "false")
	t.Setenv("SECTCONF_CONFIG_DIR", "/custom/dir")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", s.DefaultFormat)
	assert.False(t, s.Color)
	assert.Equal(t, "/custom/dir", s.ConfigDir)
}

func TestLoadWorkingDirFile(t *testing.T) {
	dir := chdirTemp(t)
	clearSectconfEnv(t)
	testutil.CreateFile(t, dir, SettingsFile, "default_format = \"xml\"\n")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "xml", s.DefaultFormat)
}

func TestEnvBeatsFile(t *testing.T) {
	dir := chdirTemp(t)
	clearSectconfEnv(t)
	testutil.CreateFile(t, dir, SettingsFile, "default_format = \"xml\"\n")
	t.Setenv("SECTCONF_DEFAULT_FORMAT", "yaml")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml", s.DefaultFormat)
}

func TestApply(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "placeholder")
	unsetenv(t, paths.EnvConfigDir)

	s := &Settings{ConfigDir: "/from/settings"}
	s.Apply()
	assert.Equal(t, "/from/settings", os.Getenv(paths.EnvConfigDir))
}

func TestApplyDoesNotOverrideEnv(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/from/env")

	s := &Settings{ConfigDir: "/from/settings"}
	s.Apply()
	assert.Equal(t, "/from/env", os.Getenv(paths.EnvConfigDir))
}
