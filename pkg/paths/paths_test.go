package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/filesystem"
)

func TestConfigDirEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/configs")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/configs", dir)
}

func TestConfigDirXDGMode(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvUseXDG, "1")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, AppDirName), dir)
}

func TestConfigDirDefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvUseXDG, "")

	dir, err := ConfigDir()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, DefaultDirName), dir)
}

func TestEnsureConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/confdir")
	fsys := filesystem.NewMemory()

	dir, err := EnsureConfigDir(fsys)
	require.NoError(t, err)
	assert.Equal(t, "/confdir", dir)

	info, err := fsys.Stat("/confdir")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigFile(t *testing.T) {
	t.Setenv(EnvConfigDir, "/confdir")

	path, err := ConfigFile("example")
	require.NoError(t, err)
	assert.Equal(t, "/confdir/example.ini", path)
}

func TestConfigFileInvalidName(t *testing.T) {
	t.Setenv(EnvConfigDir, "/confdir")

	_, err := ConfigFile("../escape")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidName))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		cfgName string
		wantErr bool
	}{
		{"simple name", "example", false},
		{"name with dash", "my-app", false},
		{"name with dot", "app.v2", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.cfgName)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidName))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
