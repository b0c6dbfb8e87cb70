package domain

import (
	"errors"
	"fmt"
)

// ExitError carries the exit status of a failed command run inside the build
// root. It is wrapped into the error chain so that the CLI can propagate the
// inner exit code verbatim, as CI callers expect.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit status carried by err.
// A nil error is 0. An error without an ExitError in its chain is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
