package model

import (
	"errors"
	"fmt"
)

// ExitError carries the process exit code for a failed command so main can
// report it after cobra has returned.
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Code.String()
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewExitError constructs an ExitError with the provided code and cause.
func NewExitError(code ExitCode, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// Usagef reports a command line misuse.
func Usagef(format string, args ...any) *ExitError {
	return NewExitError(UsageError, fmt.Errorf(format, args...))
}

// ExitCodeFromError extracts an ExitCode from err. A nil error maps to
// NoError, errors without an ExitError in their chain map to UnknownError.
func ExitCodeFromError(err error) (ExitCode, error) {
	if err == nil {
		return NoError, nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, exitErr.Err
	}
	return UnknownError, err
}
