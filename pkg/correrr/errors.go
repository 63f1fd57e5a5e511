// Package correrr defines the typed error kinds surfaced at the
// correction engine's boundary.
package correrr

import "fmt"

// Kind classifies a boundary error. See spec §7 for the full contract.
type Kind int

const (
	// NotLoaded means an operation was attempted before a snapshot was published.
	NotLoaded Kind = iota
	// InvalidArgument means a caller-supplied argument failed validation.
	InvalidArgument
	// FileNotFound means a dictionary or protected-terms path was not readable.
	FileNotFound
	// MalformedPattern means a supplied regular expression failed to compile.
	MalformedPattern
	// InternalInvariant signals a bug; it should never fire.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case NotLoaded:
		return "not_loaded"
	case InvalidArgument:
		return "invalid_argument"
	case FileNotFound:
		return "file_not_found"
	case MalformedPattern:
		return "malformed_pattern"
	case InternalInvariant:
		return "internal_invariant"
	default:
		return "unknown"
	}
}

// Error is the boundary error type. Op names the failing operation so
// callers and logs can tell corrector.Load from corrector.Correct apart.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a boundary error with no wrapped cause.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds a boundary error around an underlying cause.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: err.Error(), Err: err}
}

// Is reports whether err is a boundary error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if ce, ok := err.(*Error); ok {
			e = ce
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
