package config

// Section is a view over one named section of a manager's store. It holds
// only the manager reference and the section name; it owns no data and can
// be created freely.
type Section struct {
	manager *Manager
	name    string
}

// Name returns the section name this view is bound to
func (s *Section) Name() string {
	return s.name
}

// Get looks up a key in this section. ok is false when the section does not
// exist, the key does not exist, or the key was set to nil. Get never fails
// and performs no I/O.
func (s *Section) Get(key string) (value string, ok bool) {
	return s.manager.Store().Get(s.name, key)
}

// Set upserts a key in this section and immediately persists the whole
// file. The section is created if it does not exist. A nil value marks the
// key absent; any other value is stored in its string form.
func (s *Section) Set(key string, value interface{}) error {
	s.manager.Store().Set(s.name, key, value)
	return s.manager.Save()
}

// Unset removes a key from this section and persists the file. Removing a
// key that does not exist is a no-op and does not touch the file.
func (s *Section) Unset(key string) error {
	if !s.manager.Store().Delete(s.name, key) {
		return nil
	}
	return s.manager.Save()
}

// Keys returns the key names of this section in file order, or nil if the
// section does not exist yet.
func (s *Section) Keys() []string {
	return s.manager.Store().Keys(s.name)
}
