package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/bc-go/internal/config"
	"github.com/wagiedev/bc-go/internal/errors"
)

// waitDelay bounds how long Wait keeps reading output after the process has
// been killed, in case a grandchild still holds the pipes open.
const waitDelay = 2 * time.Second

// Runner implements config.Runner by spawning a child process per call.
type Runner struct {
	log *slog.Logger
}

// Compile-time verification that Runner implements the config.Runner interface.
var _ config.Runner = (*Runner)(nil)

// NewRunner creates a new process runner.
//
// The logger receives debug messages for each invocation and error messages
// for spawn failures.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{
		log: log.With("component", "subprocess"),
	}
}

// Run spawns inv.Path, feeds it inv.Stdin and blocks until it exits and all
// output has been read.
//
// When inv.Timeout is set and the invocation is not supervised, the process
// is killed once the timeout elapses and the capture is marked TimedOut. A
// supervised invocation is marked TimedOut when the supervisor exits with
// config.TimeoutExitCode.
//
// Returns SpawnError if the process cannot be started, or the context error
// if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, inv *config.Invocation) (*config.Capture, error) {
	id := ulid.Make().String()
	log := r.log.With("invocation_id", id)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runCtx := ctx

	if inv.Timeout > 0 && !inv.Supervised {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	//nolint:gosec // G204: Subprocess launching with dynamic args is expected for calculator invocation
	cmd := exec.CommandContext(runCtx, inv.Path, inv.Args...)
	cmd.Stdin = strings.NewReader(inv.Stdin)
	cmd.Dir = inv.Dir
	cmd.WaitDelay = waitDelay

	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	stdout := newLimitWriter(inv.MaxOutputBytes)
	stderr := newLimitWriter(inv.MaxOutputBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Debug("Starting process", "path", inv.Path, "args", inv.Args, "supervised", inv.Supervised)

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		log.Error("Failed to start process", "path", inv.Path, "error", err)

		return nil, &errors.SpawnError{Path: inv.Path, Err: err}
	}

	log.Debug("Process started", "pid", cmd.Process.Pid)

	waitErr := cmd.Wait()

	capture := &config.Capture{
		ID:              id,
		Stdout:          stdout.Bytes(),
		Stderr:          stderr.Bytes(),
		StdoutTruncated: stdout.truncated,
		StderrTruncated: stderr.truncated,
	}

	if waitErr != nil {
		if err := ctx.Err(); err != nil {
			log.Debug("Process cancelled", "error", err)

			return nil, err
		}

		exitErr, ok := stderrors.AsType[*exec.ExitError](waitErr)

		switch {
		case ok:
			capture.ExitCode = exitErr.ExitCode()
		case stderrors.Is(waitErr, exec.ErrWaitDelay):
			log.Warn("Process output still open after exit", "error", waitErr)
		default:
			return nil, fmt.Errorf("wait for %s: %w", inv.Path, waitErr)
		}

		if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
			capture.TimedOut = true
		}
	}

	if inv.Supervised && capture.ExitCode == config.TimeoutExitCode {
		capture.TimedOut = true
	}

	log.Debug("Process exited",
		"exit_code", capture.ExitCode,
		"timed_out", capture.TimedOut,
		"stdout_len", len(capture.Stdout),
		"stderr_len", len(capture.Stderr),
	)

	return capture, nil
}
