// Package settings loads the CLI's own configuration, as opposed to the
// config stores it manages. Layering, lowest to highest: built-in defaults,
// the embedded defaults file, sectconf.toml in the XDG config home, then
// sectconf.toml in the working directory, then SECTCONF_* environment
// variables.
package settings

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	scerrors "github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// SettingsFile is the file name looked up in the XDG config home and the
// working directory.
const SettingsFile = "sectconf.toml"

// envPrefix for overrides, e.g. SECTCONF_DEFAULT_FORMAT
const envPrefix = "SECTCONF_"

// Settings holds the CLI's own knobs
type Settings struct {
	// ConfigDir overrides where registered config files live. Empty means
	// the standard paths resolution.
	ConfigDir string `koanf:"config_dir"`

	// DefaultFormat is the export format used when --format is not given
	DefaultFormat string `koanf:"default_format"`

	// Color controls whether list output may use color on a terminal
	Color bool `koanf:"color"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves the effective settings
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Hard-coded defaults, so a broken embed still yields a usable tool
	hard := map[string]interface{}{
		"config_dir":     "",
		"default_format": "toml",
		"color":          true,
	}
	if err := k.Load(confmap.Provider(hard, "."), nil); err != nil {
		return nil, scerrors.Wrap(err, scerrors.ErrConfigLoad, "failed to load built-in settings")
	}

	// 2. Embedded defaults file
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, scerrors.Wrap(err, scerrors.ErrConfigLoad, "failed to load embedded settings")
	}

	// 3. Settings files, XDG config home first so the working directory wins
	for _, path := range settingsFiles() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, scerrors.Wrapf(err, scerrors.ErrConfigLoad, "failed to load settings from %s", path)
		}
	}

	// 4. Environment overrides
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, scerrors.Wrap(err, scerrors.ErrConfigLoad, "failed to load settings from environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, scerrors.Wrap(err, scerrors.ErrConfigLoad, "failed to unmarshal settings")
	}
	return &s, nil
}

// Apply propagates settings that other packages read from the environment.
// Explicit environment variables always win over settings files.
func (s *Settings) Apply() {
	if s.ConfigDir != "" && os.Getenv(paths.EnvConfigDir) == "" {
		os.Setenv(paths.EnvConfigDir, s.ConfigDir)
	}
}

func settingsFiles() []string {
	files := []string{
		filepath.Join(xdg.ConfigHome, paths.AppDirName, SettingsFile),
	}
	if cwd, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(cwd, SettingsFile))
	}
	return files
}
