// SPDX-License-Identifier: MIT

package balance

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one Batch item. Exactly one of Result and Err is set.
type Outcome struct {
	Index  int
	Input  string
	Result *Result
	Err    error
}

// Batch balances equations concurrently, at most WithConcurrency at a time.
//
// Outcomes are returned in input order. A failing equation does not stop the
// others: its error is kept in Outcome.Err. The returned error is non-nil
// only when ctx is done before every item was processed; items never started
// carry ctx.Err().
//
// Every Balance call is independent, so no locking is involved: each worker
// writes only its own slot.
func Batch(ctx context.Context, equations []string, opts ...Option) ([]Outcome, error) {
	o := gatherOptions(opts...)
	out := make([]Outcome, len(equations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, eq := range equations {
		out[i] = Outcome{Index: i, Input: eq}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			res, err := Balance(eq, opts...)
			if err != nil {
				o.logger.Debug("batch item failed", "index", i, "error", err)
				out[i].Err = err
				return nil
			}
			out[i].Result = res
			return nil
		})
	}
	err := g.Wait()

	return out, err
}
