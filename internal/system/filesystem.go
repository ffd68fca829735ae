package system

import (
	"fmt"
	"io"
	"os"
)

// FileSystem handles local file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Exists checks if any node exists at path.
// Symlinks are not followed, so a dangling link counts as existing and
// nothing is ever created through it.
func (fs *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	}

	// MkdirAll treats directories created concurrently by another process as success
	return os.MkdirAll(path, perms)
}

// CreateExclusive creates a new file for writing and fails if anything already
// exists at path. The returned error matches fs.ErrExist in that case.
func (fs *FileSystem) CreateExclusive(path string, perms os.FileMode) (io.WriteCloser, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perms)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// GetPermissions returns the permissions of a file or directory
func (fs *FileSystem) GetPermissions(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info.Mode().Perm(), nil
}
