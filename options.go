package bc

import (
	"log/slog"
	"time"

	"github.com/wagiedev/bc-go/internal/config"
)

// Options configures a calculator call.
type Options = config.Options

// TimeoutMode selects how a timeout is enforced.
type TimeoutMode = config.TimeoutMode

// Runner runs a calculator invocation. Implement it to replace the process
// layer, for example in tests.
type Runner = config.Runner

// Invocation describes a single calculator run handed to a Runner.
type Invocation = config.Invocation

// Capture is the output of an Invocation.
type Capture = config.Capture

// Timeout modes.
const (
	TimeoutModeNative     = config.TimeoutModeNative
	TimeoutModeSupervisor = config.TimeoutModeSupervisor
)

// Defaults.
const (
	DefaultBCPath      = config.DefaultBCPath
	DefaultTimeoutPath = config.DefaultTimeoutPath
	DefaultTimeout     = config.DefaultTimeout
	TimeoutExitCode    = config.TimeoutExitCode
)

// Option configures Options using the functional options pattern.
type Option func(*Options)

// applyOptions applies functional options to an Options struct.
func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithBCPath sets the calculator executable, as an absolute path or a name
// looked up in PATH. Defaults to "bc".
func WithBCPath(path string) Option {
	return func(o *Options) {
		o.BCPath = path
	}
}

// WithTimeoutPath sets the supervisor executable used in supervisor mode.
// Defaults to "timeout".
func WithTimeoutPath(path string) Option {
	return func(o *Options) {
		o.TimeoutPath = path
	}
}

// WithTimeout bounds the run time of the calculator.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithTimeoutMode selects native or supervised timeout enforcement.
func WithTimeoutMode(mode TimeoutMode) Option {
	return func(o *Options) {
		o.TimeoutMode = mode
	}
}

// WithMaxOutputBytes caps each captured output stream. A negative value
// disables the cap.
func WithMaxOutputBytes(n int) Option {
	return func(o *Options) {
		o.MaxOutputBytes = n
	}
}

// WithEnv provides additional environment variables for the calculator,
// such as BC_LINE_LENGTH.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithCwd sets the working directory for the calculator process.
func WithCwd(cwd string) Option {
	return func(o *Options) {
		o.Cwd = cwd
	}
}

// WithConcurrency bounds the number of processes EvalAll runs at once.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithRunner injects a custom Runner in place of the subprocess runner.
func WithRunner(runner Runner) Option {
	return func(o *Options) {
		o.Runner = runner
	}
}
