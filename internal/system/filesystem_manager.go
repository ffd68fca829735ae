package system

import (
	"io"
	"os"
)

// FileSystemManager defines the file system operations needed to materialize targets.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	Exists(path string) (bool, error)
	EnsureDirectory(path string, perms os.FileMode) error
	CreateExclusive(path string, perms os.FileMode) (io.WriteCloser, error)
}

var (
	_ FileSystemManager = (*FileSystem)(nil)
	_ FileSystemManager = (*MockFileSystem)(nil)
)
