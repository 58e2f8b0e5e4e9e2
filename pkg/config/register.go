package config

import (
	"os"
	"strings"

	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/filesystem"
	"github.com/sectconf/sectconf/pkg/logging"
	"github.com/sectconf/sectconf/pkg/paths"
	"github.com/sectconf/sectconf/pkg/types"
)

// Register creates or reopens the config file for name under the resolved
// config directory (see paths.ConfigDir), creating the directory if needed,
// and returns the root Config. The file is saved immediately so it exists
// on disk even before the first write. Registering the same name twice
// reuses the existing file and its contents.
func Register(name string) (*Config, error) {
	return RegisterFS(name, filesystem.NewOS())
}

// RegisterFS is Register with an explicit filesystem, for callers and tests
// that do not want to touch the real one.
func RegisterFS(name string, fsys types.FS) (*Config, error) {
	logger := logging.GetLogger("config.register")

	if _, err := paths.EnsureConfigDir(fsys); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Failed to register config")
		return nil, errors.Wrapf(err, errors.ErrRegister, "failed to register config %q", name)
	}

	path, err := paths.ConfigFile(name)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Failed to register config")
		return nil, errors.Wrapf(err, errors.ErrRegister, "failed to register config %q", name)
	}

	manager := NewManager(path, fsys)
	if err := manager.Save(); err != nil {
		logger.Error().Err(err).Str("name", name).Str("path", path).Msg("Failed to register config")
		return nil, errors.Wrapf(err, errors.ErrRegister, "failed to register config %q", name)
	}

	logger.Debug().Str("name", name).Str("path", path).Msg("Registered config")
	return New(manager), nil
}

// Registered returns the names of all registered configs, sorted by the
// directory listing. A missing config directory yields an empty list.
func Registered() ([]string, error) {
	return RegisteredFS(filesystem.NewOS())
}

// RegisteredFS is Registered with an explicit filesystem
func RegisteredFS(fsys types.FS) ([]string, error) {
	dir, err := paths.ConfigDir()
	if err != nil {
		return nil, err
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read config directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), paths.FileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), paths.FileExt))
	}
	return names, nil
}

// Unregister deletes the config file for name. Unregistering a name that
// was never registered is a no-op.
func Unregister(name string) error {
	return UnregisterFS(name, filesystem.NewOS())
}

// UnregisterFS is Unregister with an explicit filesystem
func UnregisterFS(name string, fsys types.FS) error {
	path, err := paths.ConfigFile(name)
	if err != nil {
		return err
	}
	if err := fsys.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove config file %s", path)
	}
	logger := logging.GetLogger("config.register")
	logger.Debug().Str("name", name).Str("path", path).Msg("Unregistered config")
	return nil
}
