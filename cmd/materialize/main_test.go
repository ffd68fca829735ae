package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fatih/color"

	"github.com/zoro11031/materialize/internal/cli"
	"github.com/zoro11031/materialize/internal/materialize"
	"github.com/zoro11031/materialize/internal/ui"
)

// execute runs the command tree from a fresh working directory
func execute(t *testing.T, workDir string, args ...string) error {
	t.Helper()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	// Flag variables are package globals and survive between executions
	globalOpts = cli.Options{}
	applyManifest = ""
	initManifest = ""
	nonInteractive = false

	rootCmd.SetArgs(append([]string{"--quiet", "--no-color"}, args...))
	return rootCmd.Execute()
}

func TestRootCommand(t *testing.T) {
	workDir := t.TempDir()

	require.NoError(t, execute(t, workDir, "a/b/c.txt", "hello"))
	data, err := os.ReadFile(filepath.Join(workDir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// Second invocation leaves the file alone
	require.NoError(t, execute(t, workDir, "a/b/c.txt", "changed"))
	data, err = os.ReadFile(filepath.Join(workDir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, execute(t, workDir, "some/new/dir/"))
	assert.DirExists(t, filepath.Join(workDir, "some", "new", "dir"))

	require.NoError(t, execute(t, workDir, "empty.txt"))
	info, err := os.Stat(filepath.Join(workDir, "empty.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestContentStartingWithDash(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		path    string
		content string
	}{
		{"front matter", []string{"notes.md", "---\nkey: v\n"}, "notes.md", "---\nkey: v\n"},
		{"list item", []string{"notes.md", "- item\n"}, "notes.md", "- item\n"},
		{"flag lookalike", []string{"notes.md", "--quiet"}, "notes.md", "--quiet"},
		{"separator before path", []string{"--", "notes.md", "- item\n"}, "notes.md", "- item\n"},
		{"path starting with dash", []string{"--", "-odd.txt", "x"}, "-odd.txt", "x"},
		{"ensure-file", []string{"ensure-file", "notes.md", "---\n"}, "notes.md", "---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()

			require.NoError(t, execute(t, workDir, tt.args...))
			data, err := os.ReadFile(filepath.Join(workDir, tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestRootCommandRelativeToWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	workDir := filepath.Join(root, "proj", "crate")
	require.NoError(t, os.MkdirAll(workDir, 0755))

	require.NoError(t, execute(t, workDir, "../outside.txt", "v"))
	data, err := os.ReadFile(filepath.Join(root, "proj", "outside.txt"))
	require.NoError(t, err)
	assert.Equal(t, "v", string(data))
}

func TestArgumentCountRejection(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"root without arguments", nil},
		{"root with three arguments", []string{"a.txt", "b", "c"}},
		{"ensure-path with content", []string{"ensure-path", "a.txt", "x"}},
		{"ensure-file without content", []string{"ensure-file", "a.txt"}},
		{"ensure-file with three arguments", []string{"ensure-file", "a.txt", "x", "y"}},
		{"empty path", []string{""}},
		{"unknown flag", []string{"--bogus", "a.txt"}},
		{"unknown shorthand", []string{"-x", "a.txt"}},
		{"unknown flag on ensure-file", []string{"ensure-file", "--bogus", "a.txt", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()

			err := execute(t, workDir, tt.args...)
			require.Error(t, err)
			assert.Equal(t, exitInvalidInvocation, exitCode(err))

			entries, err := os.ReadDir(workDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "a rejected invocation must not touch the filesystem")
		})
	}
}

func TestEnsureCommands(t *testing.T) {
	workDir := t.TempDir()

	require.NoError(t, execute(t, workDir, "ensure-path", "logs/"))
	assert.DirExists(t, filepath.Join(workDir, "logs"))

	require.NoError(t, execute(t, workDir, "ensure-path", "logs/app.log"))
	assert.FileExists(t, filepath.Join(workDir, "logs", "app.log"))

	require.NoError(t, execute(t, workDir, "ensure-file", "out.txt", "keep-me"))
	require.NoError(t, execute(t, workDir, "ensure-file", "out.txt", "new"))
	data, err := os.ReadFile(filepath.Join(workDir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep-me", string(data))
}

func TestCreationFailureExitCode(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "blocker"), nil, 0644))

	err := execute(t, workDir, "blocker/child.txt", "x")
	require.Error(t, err)
	assert.Equal(t, exitFailure, exitCode(err))
}

func TestInitAndApply(t *testing.T) {
	workDir := t.TempDir()

	require.NoError(t, execute(t, workDir, "init", "--non-interactive"))
	assert.FileExists(t, filepath.Join(workDir, "materialize.yaml"))

	require.NoError(t, execute(t, workDir, "apply"))
	assert.FileExists(t, filepath.Join(workDir, "generated", "README.md"))

	manifest := "targets:\n  - path: custom/\n  - path: custom/a.txt\n    content: a\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "other.yaml"), []byte(manifest), 0644))
	require.NoError(t, execute(t, workDir, "apply", "-f", "other.yaml"))

	data, err := os.ReadFile(filepath.Join(workDir, "custom", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestApplyMalformedManifest(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "materialize.yaml"), []byte("targets: []\n"), 0644))

	err := execute(t, workDir, "apply")
	require.Error(t, err)
	assert.Equal(t, exitInvalidInvocation, exitCode(err))
}

func TestConfigSetChangesManifest(t *testing.T) {
	workDir := t.TempDir()

	require.NoError(t, execute(t, workDir, "config", "set", "MANIFEST", "build/targets.yaml"))
	require.NoError(t, execute(t, workDir, "init", "--non-interactive"))
	assert.FileExists(t, filepath.Join(workDir, "build", "targets.yaml"))

	require.Error(t, execute(t, workDir, "config", "set", "NOT_A_KEY", "x"))
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	code := reportError(ui.NewWithWriter(&buf), materialize.ErrMalformedInvocation)
	assert.Equal(t, exitInvalidInvocation, code)
	assert.Contains(t, buf.String(), "[ERROR] malformed invocation")

	buf.Reset()
	code = reportError(ui.NewWithWriter(&buf), os.ErrPermission)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, buf.String(), "[ERROR] permission denied")
}
