package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports error
// injection per path so tests can exercise load and save failure handling.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	modes map[string]fs.FileMode
	dirs  map[string]bool

	errorPaths map[string]error
}

// NewMemory creates a new in-memory filesystem
func NewMemory() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		modes:      make(map[string]fs.FileMode),
		dirs:       map[string]bool{".": true, "/": true},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err until cleared
// with a nil err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err == nil {
		delete(m.errorPaths, path)
		return
	}
	m.errorPaths[path] = err
}

func (m *MemoryFS) checkError(op, path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.checkError("stat", name); err != nil {
		return nil, err
	}
	if m.dirs[name] {
		return &memFileInfo{name: filepath.Base(name), mode: 0755 | fs.ModeDir, isDir: true}, nil
	}
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(data)), mode: m.modes[name]}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.checkError("read", name); err != nil {
		return nil, err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.checkError("write", name); err != nil {
		return err
	}
	dir := filepath.Dir(name)
	if !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[name] = stored
	m.modes[name] = perm
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.checkError("mkdir", path); err != nil {
		return err
	}
	for p := path; p != "." && p != "/" && p != filepath.Dir(p); p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.checkError("readdir", name); err != nil {
		return nil, err
	}
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	var entries []fs.DirEntry
	for p := range m.files {
		if filepath.Dir(p) == name {
			entries = append(entries, &memDirEntry{info: &memFileInfo{name: filepath.Base(p), size: int64(len(m.files[p])), mode: m.modes[p]}})
		}
	}
	for p := range m.dirs {
		if p != name && filepath.Dir(p) == name {
			entries = append(entries, &memDirEntry{info: &memFileInfo{name: filepath.Base(p), mode: 0755 | fs.ModeDir, isDir: true}})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.checkError("remove", name); err != nil {
		return err
	}
	if _, ok := m.files[name]; ok {
		delete(m.files, name)
		delete(m.modes, name)
		return nil
	}
	if m.dirs[name] {
		delete(m.dirs, name)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

// memFileInfo implements fs.FileInfo for in-memory files
type memFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.isDir }
func (fi *memFileInfo) Sys() interface{}   { return nil }

// memDirEntry implements fs.DirEntry for in-memory files
type memDirEntry struct {
	info *memFileInfo
}

func (de *memDirEntry) Name() string               { return de.info.name }
func (de *memDirEntry) IsDir() bool                { return de.info.isDir }
func (de *memDirEntry) Type() fs.FileMode          { return de.info.mode.Type() }
func (de *memDirEntry) Info() (fs.FileInfo, error) { return de.info, nil }
