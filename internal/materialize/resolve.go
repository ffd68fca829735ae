package materialize

import "path/filepath"

// Resolve joins path onto workDir. An absolute path replaces workDir entirely.
// Resolution is lexical: symlinks are not evaluated.
func Resolve(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}
