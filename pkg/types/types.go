// Package types holds the shared interfaces used across sectconf packages.
package types

import "io/fs"

// FS abstracts the filesystem operations sectconf needs so that stores can be
// backed by the real OS filesystem in production and an in-memory one in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
}
