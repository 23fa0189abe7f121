package eval

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/bc-go/internal/config"
	"github.com/wagiedev/bc-go/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		capture *config.Capture
		want    string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "success",
			capture: &config.Capture{Stdout: []byte("8\n")},
			want:    "8",
		},
		{
			name:    "wrapped success",
			capture: &config.Capture{Stdout: []byte("1267650600228229401496703205\\\n376\n")},
			want:    "1267650600228229401496703205376",
		},
		{
			name:    "no result",
			capture: &config.Capture{},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errors.ErrNoResult)
			},
		},
		{
			name: "stderr only",
			capture: &config.Capture{
				Stderr: []byte("(standard_in) 1: syntax error\n"),
			},
			check: func(t *testing.T, err error) {
				toolErr, ok := stderrors.AsType[*errors.ToolError](err)
				require.True(t, ok)
				require.Equal(t, "(standard_in) 1: syntax error", toolErr.Message)
			},
		},
		{
			name: "stderr wins over stdout",
			capture: &config.Capture{
				Stdout: []byte("3\n"),
				Stderr: []byte("Runtime error (func=(main), adr=3): Divide by zero\n"),
			},
			check: func(t *testing.T, err error) {
				toolErr, ok := stderrors.AsType[*errors.ToolError](err)
				require.True(t, ok)
				require.Equal(t, "Runtime error (func=(main), adr=3): Divide by zero", toolErr.Message)
			},
		},
		{
			name: "timeout wins over partial output",
			capture: &config.Capture{
				TimedOut: true,
				Stdout:   []byte("12\\\n"),
				Stderr:   []byte("Terminated\n"),
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, errors.ErrTimeout)

				timeoutErr, ok := stderrors.AsType[*errors.TimeoutError](err)
				require.True(t, ok)
				require.Equal(t, time.Second, timeoutErr.Duration)
			},
		},
		{
			name: "truncated stdout",
			capture: &config.Capture{
				Stdout:          []byte("1234"),
				StdoutTruncated: true,
			},
			check: func(t *testing.T, err error) {
				limitErr, ok := stderrors.AsType[*errors.OutputLimitError](err)
				require.True(t, ok)
				require.Equal(t, "stdout", limitErr.Stream)
				require.Equal(t, 4, limitErr.Limit)
			},
		},
		{
			name: "truncated stderr",
			capture: &config.Capture{
				Stderr:          []byte("1234"),
				StderrTruncated: true,
			},
			check: func(t *testing.T, err error) {
				limitErr, ok := stderrors.AsType[*errors.OutputLimitError](err)
				require.True(t, ok)
				require.Equal(t, "stderr", limitErr.Stream)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.capture, time.Second, false, 4)

			if tt.check != nil {
				require.Error(t, err)
				require.Empty(t, got)
				tt.check(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_SupervisorFlag(t *testing.T) {
	_, err := Classify(&config.Capture{TimedOut: true, ExitCode: 124}, 15*time.Second, true, 0)

	timeoutErr, ok := stderrors.AsType[*errors.TimeoutError](err)
	require.True(t, ok)
	require.True(t, timeoutErr.Supervisor)
	require.Equal(t, 15*time.Second, timeoutErr.Duration)
}
