package config

import (
	"os"

	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/logging"
	"github.com/sectconf/sectconf/pkg/store"
	"github.com/sectconf/sectconf/pkg/types"
)

// Manager owns a config file path and the in-memory store loaded from it.
// Construction always succeeds: a missing file yields an empty store, and a
// corrupt or unreadable file degrades to an empty store with the failure
// recorded and retrievable via LoadErr.
type Manager struct {
	path string
	fsys types.FS
	st   *store.Store

	loadErr error
}

// NewManager creates a manager for the config file at path and loads it if
// it exists.
func NewManager(path string, fsys types.FS) *Manager {
	m := &Manager{
		path: path,
		fsys: fsys,
		st:   store.New(),
	}

	if _, err := fsys.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			m.loadErr = errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", path)
		}
		return m
	}

	if err := m.Load(); err != nil {
		logger := logging.GetLogger("config.manager")
		logger.Warn().Err(err).Str("path", path).Msg("Failed to load configs, starting empty")
		m.loadErr = err
		m.st = store.New()
	}
	return m
}

// Load re-reads the config file into the store, replacing its contents
func (m *Manager) Load() error {
	data, err := m.fsys.ReadFile(m.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", m.path)
	}
	if err := m.st.Decode(data); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse config file %s", m.path)
	}
	m.loadErr = nil
	return nil
}

// Save serializes the entire store and overwrites the config file
func (m *Manager) Save() error {
	data, err := m.st.Encode()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to serialize configs for %s", m.path)
	}
	if err := m.fsys.WriteFile(m.path, data, 0644); err != nil {
		logger := logging.GetLogger("config.manager")
		logger.Error().Err(err).Str("path", m.path).Msg("Failed to save configs")
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write config file %s", m.path)
	}
	return nil
}

// Path returns the config file path this manager owns
func (m *Manager) Path() string {
	return m.path
}

// Store returns the in-memory store. The manager retains ownership;
// mutations through the store are not persisted until Save.
func (m *Manager) Store() *store.Store {
	return m.st
}

// LoadErr reports the load failure recorded at construction, if any. A
// manager with a load error is still usable; it simply started empty.
func (m *Manager) LoadErr() error {
	return m.loadErr
}
