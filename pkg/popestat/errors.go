package popestat

import (
	"context"
	"errors"
	"syscall"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputFile indicates the input CSV file is missing or unreadable.
	ErrInputFile = errors.New("input file error")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrLoadFailed indicates the load aborted on a non-recoverable
	// database error.
	ErrLoadFailed = errors.New("load failed")

	// ErrInterrupted indicates the run was cancelled by the user.
	ErrInterrupted = errors.New("interrupted")

	// ErrOutputPipe indicates the downstream reader closed stdout.
	ErrOutputPipe = errors.New("output pipe closed")
)

// ExitCodeForError returns the process exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralErr (1) for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, ErrOutputPipe), errors.Is(err, syscall.EPIPE):
		return ExitBrokenPipe
	}

	return ExitGeneralErr
}
