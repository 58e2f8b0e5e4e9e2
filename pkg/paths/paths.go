// Package paths provides centralized path handling for sectconf.
// It resolves where registered config files live and owns the explicit
// directory bootstrap; nothing here runs as an import side effect.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/types"
)

// Environment variable names
const (
	// EnvConfigDir overrides the directory that holds registered config files
	EnvConfigDir = "SECTCONF_CONFIG_DIR"

	// EnvUseXDG switches the default directory from ./config to the XDG
	// config home when set to a non-empty value
	EnvUseXDG = "SECTCONF_USE_XDG"
)

const (
	// DefaultDirName is the directory name used in working-directory mode
	DefaultDirName = "config"

	// AppDirName is the subdirectory used under the XDG config home
	AppDirName = "sectconf"

	// FileExt is the extension of registered config files
	FileExt = ".ini"
)

// ConfigDir resolves the directory that holds registered config files.
// Resolution order: SECTCONF_CONFIG_DIR, the XDG config home (when
// SECTCONF_USE_XDG is set), then ./config relative to the working
// directory. The directory is not created; see EnsureConfigDir.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	if os.Getenv(EnvUseXDG) != "" {
		return filepath.Join(xdg.ConfigHome, AppDirName), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPathResolve, "failed to resolve working directory")
	}
	return filepath.Join(cwd, DefaultDirName), nil
}

// EnsureConfigDir resolves the config directory and creates it if missing
func EnsureConfigDir(fsys types.FS) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create config directory %s", dir)
	}
	return dir, nil
}

// ConfigFile returns the path of the config file for a registered name,
// <configdir>/<name>.ini, without creating anything.
func ConfigFile(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+FileExt), nil
}

// ValidateName rejects config names that are empty or would escape the
// config directory.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidName, "config name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidName, "config name %q must not contain path separators", name)
	}
	return nil
}
