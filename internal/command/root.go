// Package command implements the bcq command line.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	bc "github.com/wagiedev/bc-go"
	"github.com/wagiedev/bc-go/internal/config"
)

// flags holds the options shared by all subcommands.
type flags struct {
	configPath     string
	bcPath         string
	timeoutPath    string
	timeout        time.Duration
	supervisor     bool
	maxOutputBytes int
	concurrency    int
	verbose        bool
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "bcq",
		Short: "bcq - arbitrary-precision arithmetic through bc",
		Long: `bcq - arbitrary-precision arithmetic through bc

bcq runs each expression in a fresh bc -l process and prints the result on a
single line, joining numbers bc wraps across several lines.

Examples:
  bcq eval "2^100"
  bcq eval --timeout 2s "99999^99999"
  bcq eval --supervisor --timeout 20s "99^99"
  echo "s(1)" | bcq eval
  bcq serve                     # MCP server on stdio
  bcq serve --http :8080        # MCP server over streamable HTTP`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultFileName, "Config file (YAML); missing files are ignored")
	pf.StringVar(&f.bcPath, "bc", "", "Path to the bc executable (default: search PATH)")
	pf.StringVar(&f.timeoutPath, "timeout-path", "", "Path to the timeout supervisor (default: search PATH)")
	pf.DurationVar(&f.timeout, "timeout", 0, "Abort evaluation after this duration (0 disables)")
	pf.BoolVar(&f.supervisor, "supervisor", false, "Enforce --timeout with the external timeout command instead of natively")
	pf.IntVar(&f.maxOutputBytes, "max-output-bytes", 0, "Cap on captured output per stream (default 10MB, negative disables)")
	pf.IntVar(&f.concurrency, "concurrency", 0, "Maximum parallel bc processes for multiple expressions")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log invocations to stderr")

	cmd.AddCommand(newEvalCommand(f), newServeCommand(f), newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "bcq version "+bc.Version)

			return err
		},
	}
}

// options resolves the config file and flags into library options.
// Flags that were set explicitly override values from the file.
func (f *flags) options(cmd *cobra.Command) ([]bc.Option, error) {
	file, err := config.LoadFile(f.configPath)
	if err != nil {
		return nil, err
	}

	resolved := &config.Options{}
	if err := file.Apply(resolved); err != nil {
		return nil, fmt.Errorf("config %s: %w", f.configPath, err)
	}

	changed := cmd.Flags().Changed

	if changed("bc") {
		resolved.BCPath = f.bcPath
	}

	if changed("timeout-path") {
		resolved.TimeoutPath = f.timeoutPath
	}

	if changed("timeout") {
		resolved.Timeout = f.timeout
	}

	if changed("supervisor") {
		resolved.TimeoutMode = config.TimeoutModeNative
		if f.supervisor {
			resolved.TimeoutMode = config.TimeoutModeSupervisor
		}
	}

	if changed("max-output-bytes") {
		resolved.MaxOutputBytes = f.maxOutputBytes
	}

	if changed("concurrency") {
		resolved.Concurrency = f.concurrency
	}

	logger := bc.NopLogger()
	if f.verbose {
		logger = newLogger(cmd.ErrOrStderr())
	}

	return []bc.Option{
		bc.WithLogger(logger),
		bc.WithBCPath(resolved.BCPath),
		bc.WithTimeoutPath(resolved.TimeoutPath),
		bc.WithTimeout(resolved.Timeout),
		bc.WithTimeoutMode(resolved.TimeoutMode),
		bc.WithMaxOutputBytes(resolved.MaxOutputBytes),
		bc.WithConcurrency(resolved.Concurrency),
		bc.WithEnv(resolved.Env),
	}, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
