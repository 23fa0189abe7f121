package eval

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/wagiedev/bc-go/internal/cli"
	"github.com/wagiedev/bc-go/internal/config"
	"github.com/wagiedev/bc-go/internal/subprocess"
)

// Evaluator runs bc statements with a fixed set of options.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	log    *slog.Logger
	opts   *config.Options
	runner config.Runner

	// discover is false when a custom runner was injected; paths are then
	// handed to it exactly as configured.
	discover bool
}

// New creates an Evaluator from opts. A nil opts uses the defaults.
func New(opts *config.Options) *Evaluator {
	if opts == nil {
		opts = &config.Options{}
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Evaluator{
		log:    log.With("component", "evaluator"),
		opts:   opts,
		runner: opts.Runner,
	}

	if e.runner == nil {
		e.runner = subprocess.NewRunner(log)
		e.discover = true
	}

	return e
}

// Options returns the options the evaluator was created with.
func (e *Evaluator) Options() *config.Options {
	return e.opts
}

// WithTimeout returns an Evaluator sharing e's runner and options except for
// the timeout, which is replaced by d.
func (e *Evaluator) WithTimeout(d time.Duration) *Evaluator {
	opts := *e.opts
	opts.Timeout = d

	return &Evaluator{
		log:      e.log,
		opts:     &opts,
		runner:   e.runner,
		discover: e.discover,
	}
}

// Eval evaluates statement and returns the normalized result.
//
// The statement must not carry its own trailing newline; one is appended
// before it is written to bc.
func (e *Evaluator) Eval(ctx context.Context, statement string) (string, error) {
	inv, err := e.buildInvocation(ctx, statement)
	if err != nil {
		return "", err
	}

	capture, err := e.runner.Run(ctx, inv)
	if err != nil {
		return "", err
	}

	result, err := Classify(capture, e.opts.Timeout, inv.Supervised, inv.MaxOutputBytes)
	if err != nil {
		e.log.Debug("Statement failed", "invocation_id", capture.ID, "error", err)

		return "", err
	}

	e.log.Debug("Statement evaluated", "invocation_id", capture.ID, "result_len", len(result))

	return result, nil
}

// buildInvocation resolves the executables and assembles the process
// description for statement.
func (e *Evaluator) buildInvocation(ctx context.Context, statement string) (*config.Invocation, error) {
	bcPath, err := e.resolve(ctx, e.opts.BCPath, cli.BCName, e.opts.Cwd)
	if err != nil {
		return nil, err
	}

	inv := &config.Invocation{
		Path:           bcPath,
		Args:           cli.BuildArgs(),
		Stdin:          cli.BuildStdin(statement),
		Env:            cli.BuildEnvironment(e.opts.Env),
		Dir:            e.opts.Cwd,
		Timeout:        e.opts.Timeout,
		MaxOutputBytes: e.opts.OutputLimit(),
	}

	// The supervisor wraps every call in supervisor mode; "0s" disables its limit.
	if e.opts.TimeoutMode == config.TimeoutModeSupervisor {
		supervisorPath, err := e.resolve(ctx, e.opts.TimeoutPath, cli.TimeoutName, e.opts.Cwd)
		if err != nil {
			return nil, err
		}

		inv.Path = supervisorPath
		inv.Args = cli.BuildSupervisedArgs(bcPath, e.opts.Timeout)
		inv.Supervised = true
	}

	return inv, nil
}

// resolve returns the executable to launch for path, falling back to name.
// Relative paths are checked against dir, where the process will run.
func (e *Evaluator) resolve(ctx context.Context, path, name, dir string) (string, error) {
	if !e.discover {
		if path == "" {
			return name, nil
		}

		return path, nil
	}

	return cli.NewDiscoverer(&cli.Config{
		Path:   path,
		Name:   name,
		Dir:    dir,
		Logger: e.log,
	}).Discover(ctx)
}
