// Package materialize ensures files and directories exist before a build
// continues. A target is created together with its missing parent directories
// when absent, and left untouched when anything already exists at its location.
package materialize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zoro11031/materialize/internal/system"
	"github.com/zoro11031/materialize/internal/ui"
)

// Outcome is the final state reached for one target
type Outcome int

const (
	Aborted Outcome = iota
	Skipped
	DirectoryCreated
	FileCreated
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case DirectoryCreated:
		return "directory created"
	case FileCreated:
		return "file created"
	default:
		return "aborted"
	}
}

// Options holds the permissions applied to new nodes
type Options struct {
	FileMode os.FileMode
	DirMode  os.FileMode
}

// DefaultOptions matches the defaults of the config package
var DefaultOptions = Options{FileMode: 0644, DirMode: 0755}

// Materializer creates targets relative to a fixed working directory
type Materializer struct {
	fs      system.FileSystemManager
	ui      *ui.UI
	workDir string
	opts    Options
}

// New creates a Materializer resolving relative paths against workDir
func New(fsys system.FileSystemManager, ui *ui.UI, workDir string, opts Options) *Materializer {
	return &Materializer{
		fs:      fsys,
		ui:      ui,
		workDir: workDir,
		opts:    opts,
	}
}

// Materialize ensures t exists. An existing node is never modified.
// Returned errors are either *Error (creation or write failed) or wrap
// ErrMalformedInvocation.
func (m *Materializer) Materialize(t Target) (Outcome, error) {
	if t.Path == "" {
		return Aborted, malformedf("path cannot be empty")
	}

	location := Resolve(m.workDir, t.Path)
	m.ensureAncestors(location)

	exists, err := m.fs.Exists(location)
	if err != nil {
		return Aborted, &Error{Kind: CreationFailure, Path: location, Err: err}
	}
	if exists {
		m.ui.Infof("%s already exists, leaving it untouched", t.Path)
		return Skipped, nil
	}

	if t.Kind == KindDirectory {
		return m.createDirectory(location, t)
	}
	return m.createFile(location, t)
}

// MaterializeAll processes targets in order and stops at the first error.
// The returned outcomes cover every target processed so far.
func (m *Materializer) MaterializeAll(targets []Target) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(targets))
	for _, t := range targets {
		outcome, err := m.Materialize(t)
		outcomes = append(outcomes, outcome)
		if err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

// ensureAncestors is best effort. A failure is logged and the creation step
// reports whatever real problem remains.
func (m *Materializer) ensureAncestors(location string) {
	parent := filepath.Dir(location)
	if parent == location {
		return
	}
	if err := m.fs.EnsureDirectory(parent, m.opts.DirMode); err != nil {
		m.ui.Warningf("Could not create parent directories of %s: %v", location, err)
	}
}

func (m *Materializer) createDirectory(location string, t Target) (Outcome, error) {
	if t.HasContent {
		m.ui.Warningf("%s is a directory, ignoring content", t.Path)
	}

	if err := m.fs.EnsureDirectory(location, m.opts.DirMode); err != nil {
		return Aborted, &Error{Kind: CreationFailure, Path: location, Err: err}
	}

	m.ui.Successf("Created directory %s", t.Path)
	return DirectoryCreated, nil
}

func (m *Materializer) createFile(location string, t Target) (Outcome, error) {
	file, err := m.fs.CreateExclusive(location, m.opts.FileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Another build step created it between the existence check and now
			m.ui.Infof("%s was created concurrently, leaving it untouched", t.Path)
			return Skipped, nil
		}
		return Aborted, &Error{Kind: CreationFailure, Path: location, Err: err}
	}

	if len(t.Content) > 0 {
		if _, err := file.Write(t.Content); err != nil {
			file.Close()
			return Aborted, &Error{Kind: WriteFailure, Path: location, Err: err}
		}
	}

	if err := file.Close(); err != nil {
		return Aborted, &Error{Kind: WriteFailure, Path: location, Err: err}
	}

	m.ui.Successf("Created file %s (%d bytes)", t.Path, len(t.Content))
	return FileCreated, nil
}
