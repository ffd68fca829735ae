package materialize

import (
	"os"

	"github.com/zoro11031/materialize/internal/common"
)

// Kind tells whether a target names a file or a directory
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Target describes one node to materialize.
// Path is kept exactly as given; Kind is derived from it once at parse time.
type Target struct {
	Path       string
	Kind       Kind
	Content    []byte
	HasContent bool
}

// NewTarget builds a target with no content.
// A path ending in a path separator denotes a directory, anything else an empty file.
func NewTarget(path string) (Target, error) {
	if err := common.ValidateTargetPath(path); err != nil {
		return Target{}, malformedf("%v", err)
	}
	return Target{Path: path, Kind: kindOf(path)}, nil
}

// NewFileTarget builds a target whose content is written verbatim on creation.
// Content is ignored when path denotes a directory.
func NewFileTarget(path, content string) (Target, error) {
	t, err := NewTarget(path)
	if err != nil {
		return Target{}, err
	}
	t.Content = []byte(content)
	t.HasContent = true
	return t, nil
}

// ParseArgs accepts one argument (path) or two (path and content)
func ParseArgs(args []string) (Target, error) {
	if err := CheckArity(args, 1, 2); err != nil {
		return Target{}, err
	}
	if len(args) == 1 {
		return NewTarget(args[0])
	}
	return NewFileTarget(args[0], args[1])
}

// CheckArity rejects argument lists shorter than min or longer than max
func CheckArity(args []string, min, max int) error {
	if len(args) >= min && len(args) <= max {
		return nil
	}
	if min == max {
		return malformedf("expected %d argument(s), got %d %q", min, len(args), args)
	}
	return malformedf("expected %d to %d arguments, got %d %q", min, max, len(args), args)
}

func kindOf(path string) Kind {
	if os.IsPathSeparator(path[len(path)-1]) {
		return KindDirectory
	}
	return KindFile
}
