package errors

import (
	"errors"
	"fmt"
	"time"
)

// BCError is the base interface for all errors returned by the calculator wrapper.
type BCError interface {
	error
	IsBCError() bool
}

// Compile-time verification that all error types implement BCError.
var (
	_ BCError = (*SpawnError)(nil)
	_ BCError = (*TimeoutError)(nil)
	_ BCError = (*ToolError)(nil)
	_ BCError = (*MalformedOutputError)(nil)
	_ BCError = (*OutputLimitError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoResult indicates the calculator wrote nothing to stdout or stderr,
	// e.g. for an assignment-only statement.
	ErrNoResult = errors.New("no result")

	// ErrTimeout is matched by every TimeoutError via errors.Is.
	ErrTimeout = errors.New("timeout")

	// ErrEmptyStatement indicates an empty statement was passed to a batch call.
	ErrEmptyStatement = errors.New("empty statement")
)

// SpawnError indicates the calculator (or its supervisor) could not be started.
type SpawnError struct {
	Path          string
	SearchedPaths []string
	Err           error
}

func (e *SpawnError) Error() string {
	if len(e.SearchedPaths) > 0 {
		return fmt.Sprintf("spawn %s: not found in: %v", e.Path, e.SearchedPaths)
	}

	return fmt.Sprintf("spawn %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsBCError implements BCError.
func (e *SpawnError) IsBCError() bool { return true }

// TimeoutError indicates the calculator ran longer than the configured duration.
type TimeoutError struct {
	Duration time.Duration

	// Supervisor is true when the timeout was reported by the external
	// supervisor (exit status 124) rather than the native deadline.
	Supervisor bool
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s", e.Duration)
}

// Is reports ErrTimeout as a match.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// IsBCError implements BCError.
func (e *TimeoutError) IsBCError() bool { return true }

// ToolError carries an error message the calculator wrote to stderr,
// typically a syntax or evaluation error.
type ToolError struct {
	Message  string
	ExitCode int
}

func (e *ToolError) Error() string {
	return "bc: " + e.Message
}

// IsBCError implements BCError.
func (e *ToolError) IsBCError() bool { return true }

// MalformedOutputError indicates an output stream could not be normalized.
type MalformedOutputError struct {
	Stream string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Stream, e.Reason)
}

// IsBCError implements BCError.
func (e *MalformedOutputError) IsBCError() bool { return true }

// OutputLimitError indicates an output stream exceeded the capture limit.
type OutputLimitError struct {
	Stream string
	Limit  int
}

func (e *OutputLimitError) Error() string {
	return fmt.Sprintf("%s exceeded %d bytes", e.Stream, e.Limit)
}

// IsBCError implements BCError.
func (e *OutputLimitError) IsBCError() bool { return true }
