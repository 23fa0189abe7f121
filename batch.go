package bc

import (
	"context"

	"github.com/wagiedev/bc-go/internal/eval"
)

// Result is the outcome of one statement evaluated by EvalAll.
type Result = eval.Result

// EvalAll evaluates statements concurrently, each in its own bc process.
//
// Results are returned in input order. A failing statement records its error
// in Result.Err without affecting the others; the returned error is only set
// when ctx is cancelled.
func EvalAll(ctx context.Context, statements []string, opts ...Option) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return eval.New(applyOptions(opts)).EvalAll(ctx, statements)
}
