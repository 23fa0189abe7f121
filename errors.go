package bc

import "github.com/wagiedev/bc-go/internal/errors"

// Re-export error types from internal package

// BCError is the base interface for all errors returned by this package.
type BCError = errors.BCError

// SpawnError indicates the calculator or its supervisor could not be started.
type SpawnError = errors.SpawnError

// TimeoutError indicates the calculator ran longer than the configured duration.
type TimeoutError = errors.TimeoutError

// ToolError carries an error message bc wrote to stderr.
type ToolError = errors.ToolError

// MalformedOutputError indicates captured output could not be normalized.
type MalformedOutputError = errors.MalformedOutputError

// OutputLimitError indicates captured output exceeded the configured limit.
type OutputLimitError = errors.OutputLimitError

// Re-export sentinel errors from internal package.
var (
	// ErrNoResult indicates the statement produced no output.
	ErrNoResult = errors.ErrNoResult

	// ErrTimeout matches every TimeoutError.
	ErrTimeout = errors.ErrTimeout

	// ErrEmptyStatement indicates an empty statement in a batch.
	ErrEmptyStatement = errors.ErrEmptyStatement
)
