package bc

import (
	"context"
	"math"
	"time"

	"github.com/wagiedev/bc-go/internal/config"
	"github.com/wagiedev/bc-go/internal/eval"
)

// BC runs the calculator at bcPath on statement and returns the result.
//
// bcPath may be an absolute path or a name looked up in PATH. The statement
// must not end in a newline; one is appended before it is sent.
func BC(ctx context.Context, bcPath, statement string) (string, error) {
	return Eval(ctx, statement, WithBCPath(bcPath))
}

// maxTimeoutSecs is the largest whole-second count a time.Duration holds.
const maxTimeoutSecs = uint64(math.MaxInt64 / int64(time.Second))

// BCTimeout runs the calculator at bcPath under the supervisor at
// timeoutPath, which kills it after timeoutSecs seconds. Zero leaves the
// supervisor without a limit; values beyond what a time.Duration holds are
// clamped. A timeout is reported as TimeoutError.
func BCTimeout(ctx context.Context, timeoutPath string, timeoutSecs uint, bcPath, statement string) (string, error) {
	secs := min(uint64(timeoutSecs), maxTimeoutSecs)

	return Eval(ctx, statement,
		WithTimeoutPath(timeoutPath),
		WithTimeout(time.Duration(secs)*time.Second),
		WithTimeoutMode(TimeoutModeSupervisor),
		WithBCPath(bcPath),
	)
}

// Eval evaluates statement with bc and returns the normalized result.
//
// Without options it runs "bc" from PATH with no timeout; the call can then
// only be interrupted through ctx.
func Eval(ctx context.Context, statement string, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return eval.New(applyOptions(opts)).Eval(ctx, statement)
}

// EvalTimeout evaluates statement under the timeout supervisor. The timeout
// defaults to DefaultTimeout and the supervisor to DefaultTimeoutPath; both
// can be overridden with WithTimeout and WithTimeoutPath.
func EvalTimeout(ctx context.Context, statement string, opts ...Option) (string, error) {
	base := []Option{
		WithTimeout(config.DefaultTimeout),
		WithTimeoutMode(TimeoutModeSupervisor),
	}

	return Eval(ctx, statement, append(base, opts...)...)
}
