package eval

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/bc-go/internal/errors"
)

// Result is the outcome of one statement in a batch.
type Result struct {
	Statement string
	Value     string
	Err       error
}

// EvalAll evaluates each statement in its own process, running at most
// Options.Parallelism at once. Results are returned in input order; a failed
// statement records its error in Result.Err and does not stop the others.
//
// The returned error is non-nil only when ctx is cancelled, in which case the
// results evaluated so far are still returned.
func (e *Evaluator) EvalAll(ctx context.Context, statements []string) ([]Result, error) {
	results := make([]Result, len(statements))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Parallelism())

	for i, statement := range statements {
		results[i].Statement = statement

		if strings.TrimSpace(statement) == "" {
			results[i].Err = errors.ErrEmptyStatement

			continue
		}

		g.Go(func() error {
			value, err := e.Eval(gCtx, statement)
			if err != nil && gCtx.Err() != nil && isContextErr(err) {
				return err
			}

			results[i].Value = value
			results[i].Err = err

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.log.Debug("Batch cancelled", "error", err)

		return results, err
	}

	return results, nil
}

func isContextErr(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
