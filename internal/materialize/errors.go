package materialize

import (
	"errors"
	"fmt"
)

// ErrMalformedInvocation reports a wrong number or kind of arguments
var ErrMalformedInvocation = errors.New("malformed invocation")

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInvocation, fmt.Sprintf(format, args...))
}

// ErrorKind classifies fatal materialization failures
type ErrorKind int

const (
	CreationFailure ErrorKind = iota
	WriteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case WriteFailure:
		return "write failure"
	default:
		return "creation failure"
	}
}

// Error is a fatal failure for one target. Nothing is retried or cleaned up.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == WriteFailure {
		return fmt.Sprintf("failed to write content to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to create %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
