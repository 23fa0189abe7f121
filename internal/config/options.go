// Package config provides configuration types for the bc wrapper.
package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultBCPath is the calculator executable used when none is configured.
	// It is resolved through PATH.
	DefaultBCPath = "bc"

	// DefaultTimeoutPath is the supervisor executable used for supervised timeouts.
	DefaultTimeoutPath = "timeout"

	// DefaultTimeout bounds EvalTimeout calls that do not set a duration.
	DefaultTimeout = 15 * time.Second

	// TimeoutExitCode is the status the supervisor exits with when it had to
	// kill the calculator.
	TimeoutExitCode = 124

	// DefaultMaxOutputBytes caps each captured stream.
	DefaultMaxOutputBytes = 10 * 1024 * 1024 // 10MB

	// DefaultConcurrency bounds the number of processes EvalAll runs at once.
	DefaultConcurrency = 4
)

// TimeoutMode selects how a timeout is enforced.
type TimeoutMode string

const (
	// TimeoutModeNative races the calculator against a context deadline and
	// kills it on expiry.
	TimeoutModeNative TimeoutMode = "native"
	// TimeoutModeSupervisor wraps the calculator in an external supervisor
	// (coreutils timeout) and watches for TimeoutExitCode.
	TimeoutModeSupervisor TimeoutMode = "supervisor"
)

// Valid reports whether m is a known timeout mode. The empty mode is valid
// and means native.
func (m TimeoutMode) Valid() bool {
	switch m {
	case "", TimeoutModeNative, TimeoutModeSupervisor:
		return true
	default:
		return false
	}
}

// Options configures a calculator invocation.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// BCPath is the calculator executable, as an absolute path or a name
	// looked up in PATH. Defaults to DefaultBCPath.
	BCPath string

	// TimeoutPath is the supervisor executable used in TimeoutModeSupervisor.
	// Defaults to DefaultTimeoutPath.
	TimeoutPath string

	// Timeout bounds the run time of the calculator. Zero means no timeout.
	Timeout time.Duration

	// TimeoutMode selects native or supervised timeout enforcement.
	TimeoutMode TimeoutMode

	// MaxOutputBytes caps each of stdout and stderr. Zero uses
	// DefaultMaxOutputBytes, a negative value disables the cap.
	MaxOutputBytes int

	// Env provides additional environment variables for the calculator process
	// (e.g. BC_LINE_LENGTH).
	Env map[string]string

	// Cwd sets the working directory for the calculator process.
	Cwd string

	// Concurrency bounds parallel processes in batch evaluation.
	// Defaults to DefaultConcurrency.
	Concurrency int

	// Runner allows injecting a custom process runner.
	// If nil, the subprocess runner is used.
	Runner Runner
}

// OutputLimit returns the effective per-stream capture limit, or 0 when
// capture is unbounded.
func (o *Options) OutputLimit() int {
	switch {
	case o.MaxOutputBytes < 0:
		return 0
	case o.MaxOutputBytes == 0:
		return DefaultMaxOutputBytes
	default:
		return o.MaxOutputBytes
	}
}

// Parallelism returns the effective batch concurrency.
func (o *Options) Parallelism() int {
	if o.Concurrency <= 0 {
		return DefaultConcurrency
	}

	return o.Concurrency
}
