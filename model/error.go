package model

import "fmt"

type ExitCode int

func (e ExitCode) String() string {
	return fmt.Sprintf("Exit code %d", e)
}

func (e ExitCode) Error() string {
	return e.String()
}

const (
	Unset ExitCode = -1
)
const (
	NoError ExitCode = iota
	UnknownError
	UsageError
	// IOFailure means a config file or directory could not be read or written.
	IOFailure
	// ParseFailure means a stored document is malformed.
	ParseFailure
)
