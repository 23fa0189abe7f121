package eval

import (
	"time"

	"github.com/wagiedev/bc-go/internal/config"
	"github.com/wagiedev/bc-go/internal/errors"
	"github.com/wagiedev/bc-go/internal/output"
)

// Classify turns a capture into the normalized result or the error that
// describes why there is none. timeout is the duration that was enforced and
// only appears in the TimeoutError.
func Classify(c *config.Capture, timeout time.Duration, supervised bool, limit int) (string, error) {
	if c.TimedOut {
		return "", &errors.TimeoutError{Duration: timeout, Supervisor: supervised}
	}

	if c.StderrTruncated {
		return "", &errors.OutputLimitError{Stream: "stderr", Limit: limit}
	}

	if c.StdoutTruncated {
		return "", &errors.OutputLimitError{Stream: "stdout", Limit: limit}
	}

	if len(c.Stderr) > 0 {
		msg, err := output.NormalizeBytes("stderr", c.Stderr)
		if err != nil {
			return "", err
		}

		return "", &errors.ToolError{Message: msg, ExitCode: c.ExitCode}
	}

	if len(c.Stdout) == 0 {
		return "", errors.ErrNoResult
	}

	return output.NormalizeBytes("stdout", c.Stdout)
}
