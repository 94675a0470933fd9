package errors

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/interp"
)

// OsExit is swapped out in tests.
var OsExit = os.Exit

type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string { return e.cause.Error() }
func (e *exitCoder) Cause() error  { return e.cause }
func (e *exitCoder) Unwrap() error { return e.cause }

// ExitCode returns the attached exit code.
func (e *exitCoder) ExitCode() int { return e.code }

// WithExitCode attaches an exit code to err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode extracts the exit code from an error chain.
// It returns 0 for nil and 1 when nothing more specific is attached.
//
// Lookup order:
//  1. an exit code attached via WithExitCode
//  2. the exit status of a shell command run by the dependency loader
//  3. an exec.ExitError
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}

// Exit terminates the process with code.
func Exit(code int) {
	OsExit(code)
}
