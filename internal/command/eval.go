package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	bc "github.com/wagiedev/bc-go"
)

// errSomeFailed is returned when at least one expression of a batch failed.
var errSomeFailed = errors.New("one or more expressions failed")

func newEvalCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions and print their results",
		Long: `Evaluate expressions and print their results.

With no arguments, expressions are read from stdin, one per line.
Multiple expressions are evaluated concurrently, each in its own bc process,
and printed in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			statements := args
			if len(statements) == 0 {
				statements, err = readStatements(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			switch len(statements) {
			case 0:
				return errors.New("no expression given")
			case 1:
				result, err := bc.Eval(cmd.Context(), statements[0], opts...)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

				return err
			}

			results, err := bc.EvalAll(cmd.Context(), statements, opts...)
			if err != nil {
				return err
			}

			return printResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
		},
	}
}

// readStatements returns the non-blank lines of r.
func readStatements(r io.Reader) ([]string, error) {
	var statements []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		statements = append(statements, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return statements, nil
}

func printResults(stdout, stderr io.Writer, results []bc.Result) error {
	failed := false

	for _, r := range results {
		if r.Err != nil {
			failed = true

			fmt.Fprintf(stderr, "%s: %v\n", r.Statement, r.Err)

			continue
		}

		if _, err := fmt.Fprintln(stdout, r.Value); err != nil {
			return err
		}
	}

	if failed {
		return errSomeFailed
	}

	return nil
}
