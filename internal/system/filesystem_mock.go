package system

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// It records every mutation so tests can assert that a run changed nothing.
type MockFileSystem struct {
	mu           sync.Mutex
	Dirs         map[string]bool
	WrittenFiles map[string][]byte
	Mutations    int

	// Failure injection
	DirErr    error
	CreateErr error
	WriteErr  error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Dirs:         make(map[string]bool),
		WrittenFiles: make(map[string][]byte),
	}
}

func (m *MockFileSystem) exists(path string) bool {
	if m.Dirs[path] {
		return true
	}
	_, ok := m.WrittenFiles[path]
	return ok || filepath.Dir(path) == path
}

// Exists reports whether the mock holds a file or directory at path.
func (m *MockFileSystem) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exists(filepath.Clean(path)), nil
}

// EnsureDirectory records path and its missing ancestors as directories.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DirErr != nil {
		return m.DirErr
	}

	path = filepath.Clean(path)
	if _, isFile := m.WrittenFiles[path]; isFile {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	for p := path; !m.exists(p); p = filepath.Dir(p) {
		m.Dirs[p] = true
		m.Mutations++
	}
	return nil
}

// CreateExclusive captures a new file in memory.
func (m *MockFileSystem) CreateExclusive(path string, perms os.FileMode) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	path = filepath.Clean(path)
	if m.exists(path) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
	}
	m.WrittenFiles[path] = []byte{}
	m.Mutations++
	return &mockFile{fs: m, path: path}, nil
}

// FileContent returns the captured content of a file.
func (m *MockFileSystem) FileContent(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.WrittenFiles[filepath.Clean(path)]
	return content, ok
}

type mockFile struct {
	fs   *MockFileSystem
	path string
}

func (f *mockFile) Write(p []byte) (int, error) {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	if f.fs.WriteErr != nil {
		return 0, f.fs.WriteErr
	}
	f.fs.WrittenFiles[f.path] = append(f.fs.WrittenFiles[f.path], p...)
	f.fs.Mutations++
	return len(p), nil
}

func (f *mockFile) Close() error {
	return nil
}
