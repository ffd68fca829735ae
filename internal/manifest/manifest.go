// Package manifest reads and writes YAML lists of targets so a single build
// step can materialize many paths in order.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoro11031/materialize/internal/materialize"
)

// Entry is one target in a manifest.
// A nil Content means the entry carries no content at all.
type Entry struct {
	Path    string  `yaml:"path"`
	Content *string `yaml:"content,omitempty"`
}

// Manifest is the document read by apply and written by init
type Manifest struct {
	Entries []Entry `yaml:"targets"`
}

// Load reads and parses a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: manifest is empty", materialize.ErrMalformedInvocation)
		}
		return nil, fmt.Errorf("%w: invalid manifest: %v", materialize.ErrMalformedInvocation, err)
	}

	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("%w: manifest lists no targets", materialize.ErrMalformedInvocation)
	}
	return &m, nil
}

// Targets converts every entry, in order, into a materialize.Target
func (m *Manifest) Targets() ([]materialize.Target, error) {
	targets := make([]materialize.Target, 0, len(m.Entries))
	for i, e := range m.Entries {
		var (
			t   materialize.Target
			err error
		)
		if e.Content != nil {
			t, err = materialize.NewFileTarget(e.Path, *e.Content)
		} else {
			t, err = materialize.NewTarget(e.Path)
		}
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i+1, err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// Add appends an entry. An empty content string is kept, nil means no content.
func (m *Manifest) Add(path string, content *string) {
	m.Entries = append(m.Entries, Entry{Path: path, Content: content})
}

// Marshal encodes the manifest as YAML
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}
