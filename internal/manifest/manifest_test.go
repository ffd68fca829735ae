package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zoro11031/materialize/internal/materialize"
)

func strPtr(s string) *string {
	return &s
}

func TestParse(t *testing.T) {
	input := `targets:
  - path: migrations/users.sql
    content: |
      create table if not exists users (
          id serial
      );
  - path: logs/
  - path: empty.txt
    content: ""
  - path: bare.txt
`

	m, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &Manifest{Entries: []Entry{
		{Path: "migrations/users.sql", Content: strPtr("create table if not exists users (\n    id serial\n);\n")},
		{Path: "logs/"},
		{Path: "empty.txt", Content: strPtr("")},
		{Path: "bare.txt"},
	}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"no targets", "targets: []\n"},
		{"unknown field", "targets:\n  - path: a.txt\n    mode: 0644\n"},
		{"wrong type", "targets: a.txt\n"},
		{"not yaml", "targets: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, materialize.ErrMalformedInvocation) {
				t.Errorf("Parse() error = %v, want ErrMalformedInvocation", err)
			}
		})
	}
}

func TestTargets(t *testing.T) {
	m := &Manifest{}
	m.Add("a/b/c.txt", strPtr("hello"))
	m.Add("some/dir/", nil)
	m.Add("empty.txt", nil)

	got, err := m.Targets()
	if err != nil {
		t.Fatalf("Targets() error = %v", err)
	}

	want := []materialize.Target{
		{Path: "a/b/c.txt", Kind: materialize.KindFile, Content: []byte("hello"), HasContent: true},
		{Path: "some/dir/", Kind: materialize.KindDirectory},
		{Path: "empty.txt", Kind: materialize.KindFile},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetsRejectsEmptyPath(t *testing.T) {
	m := &Manifest{}
	m.Add("ok.txt", nil)
	m.Add("", strPtr("x"))

	_, err := m.Targets()
	if !errors.Is(err, materialize.ErrMalformedInvocation) {
		t.Errorf("Targets() error = %v, want ErrMalformedInvocation", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	m := &Manifest{}
	m.Add("migrations/users.sql", strPtr("line one\nline two\n"))
	m.Add("logs/", nil)

	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "materialize.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v\n%s", err, data)
	}
	if diff := cmp.Diff(m, loaded); diff != "" {
		t.Errorf("Load(Marshal()) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
