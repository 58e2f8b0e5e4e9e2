package config

import (
	"github.com/sectconf/sectconf/pkg/errors"
)

// Config is the root handle over a manager. It holds no state of its own;
// all data lives in the manager's store.
type Config struct {
	manager *Manager
}

// New wraps a manager in a root Config handle
func New(m *Manager) *Config {
	return &Config{manager: m}
}

// Section returns a view over the named section. It always succeeds: the
// section does not need to exist and is created in the store on first write.
func (c *Config) Section(name string) *Section {
	return &Section{manager: c.manager, name: name}
}

// Set always fails. Values live in sections; use
// Section(name).Set(key, value) instead. The error is returned immediately
// so misuse cannot be mistaken for a persisted write.
func (c *Config) Set(key string, value interface{}) error {
	return errors.Newf(errors.ErrRootAssign,
		"key %q must be set through a section, e.g. Section(name).Set(key, value)", key)
}

// Manager returns the manager this config wraps
func (c *Config) Manager() *Manager {
	return c.manager
}
