package cli

import (
	"errors"
	"fmt"
)

// ArgumentMissingError is returned when a required positional argument was
// not given.
type ArgumentMissingError struct {
	Name string
}

func (e *ArgumentMissingError) Error() string {
	return fmt.Sprintf("no %s specified", e.Name)
}

// IOError wraps a failure to read an input file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read input: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UsageError marks errors caused by bad command-line usage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var missing *ArgumentMissingError
	var usage *UsageError
	if errors.As(err, &missing) || errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}
