package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Parent directories of
// every file are created implicitly.
type MockFileSystem struct {
	mu          sync.RWMutex
	files       map[string][]byte
	dirs        map[string]bool
	readDirErrs map[string]error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string][]byte),
		dirs:        make(map[string]bool),
		readDirErrs: make(map[string]error),
	}
}

// Verify MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores a file and registers all of its parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.files[path] = data
	m.addParents(path)
}

// SetDir registers an empty directory.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.dirs[path] = true
	m.addParents(path)
}

// SetReadDirError makes ReadDir fail for the given directory.
func (m *MockFileSystem) SetReadDirError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readDirErrs[filepath.Clean(path)] = err
}

func (m *MockFileSystem) addParents(path string) {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == filepath.Dir(dir) {
			return
		}
	}
}

func (m *MockFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	name = filepath.Clean(name)
	if data, ok := m.files[name]; ok {
		return mockFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if m.dirs[name] {
		return mockFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	name = filepath.Clean(name)
	if err, ok := m.readDirErrs[name]; ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]fs.DirEntry)
	for path, data := range m.files {
		if child, ok := directChild(name, path); ok {
			seen[child] = fs.FileInfoToDirEntry(mockFileInfo{name: child, size: int64(len(data))})
		}
	}
	for path := range m.dirs {
		if child, ok := directChild(name, path); ok {
			seen[child] = fs.FileInfoToDirEntry(mockFileInfo{name: child, dir: true})
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	slices.Sort(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, seen[n])
	}
	return entries, nil
}

func (m *MockFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.SetFile(name, slices.Clone(data))
	return nil
}

// directChild reports whether path sits exactly one level below dir and
// returns its base name.
func directChild(dir, path string) (string, bool) {
	if path == dir || filepath.Dir(path) != dir {
		return "", false
	}
	return filepath.Base(path), true
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | PermDirRWX
	}
	return PermFileRW
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
