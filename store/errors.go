package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies store failures.
type Kind int

const (
	// IOError covers directory creation, read and write failures.
	IOError Kind = iota + 1
	// ParseError means a stored document is malformed or has the wrong shape.
	ParseError
	// EncodeError means a value could not be serialized.
	EncodeError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "io error"
	case ParseError:
		return "parse error"
	case EncodeError:
		return "encode error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is returned by every store operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func kindOf(err error) Kind {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return 0
}

// IsIOError reports whether err is a store failure to reach the disk.
func IsIOError(err error) bool { return kindOf(err) == IOError }

// IsParseError reports whether err is a store document that failed to decode.
func IsParseError(err error) bool { return kindOf(err) == ParseError }

// IsEncodeError reports whether err is a value the store could not encode.
func IsEncodeError(err error) bool { return kindOf(err) == EncodeError }
