package bc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	logger := NopLogger()
	env := map[string]string{"BC_LINE_LENGTH": "0"}

	opts := applyOptions([]Option{
		WithLogger(logger),
		WithBCPath("/usr/bin/bc"),
		WithTimeoutPath("gtimeout"),
		WithTimeout(3 * time.Second),
		WithTimeoutMode(TimeoutModeSupervisor),
		WithMaxOutputBytes(1024),
		WithEnv(env),
		WithCwd("/tmp"),
		WithConcurrency(6),
	})

	require.Same(t, logger, opts.Logger)
	require.Equal(t, "/usr/bin/bc", opts.BCPath)
	require.Equal(t, "gtimeout", opts.TimeoutPath)
	require.Equal(t, 3*time.Second, opts.Timeout)
	require.Equal(t, TimeoutModeSupervisor, opts.TimeoutMode)
	require.Equal(t, 1024, opts.OutputLimit())
	require.Equal(t, env, opts.Env)
	require.Equal(t, "/tmp", opts.Cwd)
	require.Equal(t, 6, opts.Parallelism())
}

func TestApplyOptions_LastWins(t *testing.T) {
	opts := applyOptions([]Option{WithTimeout(time.Second), WithTimeout(2 * time.Second)})
	require.Equal(t, 2*time.Second, opts.Timeout)
}

func TestApplyOptions_Empty(t *testing.T) {
	opts := applyOptions(nil)
	require.Equal(t, &Options{}, opts)
}
