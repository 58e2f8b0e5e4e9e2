package store

import (
	"bytes"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/sectconf/sectconf/pkg/errors"
)

// NoneToken is the literal string that marks an absent value on disk.
const NoneToken = "None"

// Store is an ordered mapping of section name to key-value pairs.
// The zero value is not usable; use New.
type Store struct {
	file *ini.File
}

// New creates an empty store
func New() *Store {
	return &Store{file: ini.Empty()}
}

// Decode replaces the store contents with the sections parsed from data.
// On error the previous contents are kept.
func (s *Store) Decode(data []byte) error {
	f, err := ini.Load(data)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreDecode, "failed to parse config data")
	}
	s.file = f
	return nil
}

// Encode serializes the store to INI text. The output is deterministic:
// encoding an unchanged store twice yields identical bytes.
func (s *Store) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreEncode, "failed to serialize config data")
	}
	return buf.Bytes(), nil
}

// Get looks up a key in a section. The second return value is false when
// the section does not exist, the key does not exist, or the stored value
// is the absence token. Get never fails.
func (s *Store) Get(section, key string) (string, bool) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", false
	}
	value := k.String()
	if value == NoneToken {
		return "", false
	}
	return value, true
}

// Set upserts a key in a section, creating the section if needed. A nil
// value stores the absence token; any other value is coerced to its string
// form, so non-string values come back as strings.
func (s *Store) Set(section, key string, value interface{}) {
	s.file.Section(section).Key(key).SetValue(coerce(value))
}

// Has reports whether a key exists in a section, regardless of whether it
// holds the absence token.
func (s *Store) Has(section, key string) bool {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return false
	}
	return sec.HasKey(key)
}

// Delete removes a key from a section. It reports whether the key existed.
func (s *Store) Delete(section, key string) bool {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return false
	}
	if !sec.HasKey(key) {
		return false
	}
	sec.DeleteKey(key)
	return true
}

// DeleteSection removes a whole section. It reports whether the section
// existed.
func (s *Store) DeleteSection(section string) bool {
	if _, err := s.file.GetSection(section); err != nil {
		return false
	}
	s.file.DeleteSection(section)
	return true
}

// Sections returns the section names in file order. The parser's unnamed
// default section is excluded.
func (s *Store) Sections() []string {
	var names []string
	for _, name := range s.file.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Keys returns the key names of a section in file order, or nil if the
// section does not exist.
func (s *Store) Keys(section string) []string {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.KeyStrings()
}

// Snapshot returns a copy of the raw store contents, including absence
// tokens. Mutating the result does not affect the store.
func (s *Store) Snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, name := range s.Sections() {
		sec, err := s.file.GetSection(name)
		if err != nil {
			continue
		}
		kv := make(map[string]string)
		for _, key := range sec.KeyStrings() {
			kv[key] = sec.Key(key).String()
		}
		out[name] = kv
	}
	return out
}

func coerce(value interface{}) string {
	if value == nil {
		return NoneToken
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
