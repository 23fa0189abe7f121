package config

import (
	"context"
	"time"
)

// Invocation describes a single calculator run. It is built fresh for every
// call and never shared.
type Invocation struct {
	// Path is the executable actually launched: the calculator, or the
	// supervisor when Supervised is set.
	Path string

	// Args are the arguments passed to Path.
	Args []string

	// Stdin is written to the process and then closed.
	Stdin string

	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string

	// Dir is the working directory; empty inherits the caller's.
	Dir string

	// Timeout is the enforced duration, zero for none.
	Timeout time.Duration

	// Supervised is true when Path is the external timeout supervisor.
	Supervised bool

	// MaxOutputBytes caps each captured stream, zero for unbounded.
	MaxOutputBytes int
}

// Capture is the complete result of running an Invocation to completion.
type Capture struct {
	// ID identifies the invocation in logs.
	ID string

	// ExitCode is the process exit status, -1 if it was killed by a signal.
	ExitCode int

	// TimedOut is set when the timeout fired, either natively or as reported
	// by the supervisor's exit status.
	TimedOut bool

	Stdout []byte
	Stderr []byte

	// StdoutTruncated and StderrTruncated are set when a stream exceeded
	// MaxOutputBytes and was cut short.
	StdoutTruncated bool
	StderrTruncated bool
}

// Runner runs a calculator invocation and captures its output.
// Implement this to substitute the process layer in tests.
//
// The default implementation spawns a child process per call.
type Runner interface {
	// Run executes inv to completion. It returns an error only when the
	// process could not be spawned or the context was cancelled; calculator
	// failures are reported through the Capture.
	Run(ctx context.Context, inv *Invocation) (*Capture, error)
}
