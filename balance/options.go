// SPDX-License-Identifier: MIT
// Package: balance
//
// options.go — functional configuration for Balance, Verify and Batch.
//
// Deterministic defaults:
//   • divider       = formula.DefaultDivider ("->")
//   • knownElements = false
//   • solver        = solver.Gauss{}
//   • logger        = discards everything
//   • concurrency   = DefaultConcurrency (Batch only)

package balance

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/solver"
)

// DefaultConcurrency bounds the number of equations Batch balances at once.
const DefaultConcurrency = 8

const (
	panicSolverNil          = "balance: WithSolver: solver must not be nil"
	panicConcurrencyInvalid = "balance: WithConcurrency: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	divider       string
	knownElements bool
	solver        solver.Solver
	logger        *slog.Logger
	concurrency   int
}

// WithDivider sets the side divider. Panics on a divider formula.WithDivider rejects.
func WithDivider(d string) Option {
	_ = formula.WithDivider(d) // validates, panics on nonsense

	return func(o *Options) { o.divider = d }
}

// WithKnownElements restricts symbols to the periodic table.
func WithKnownElements() Option {
	return func(o *Options) { o.knownElements = true }
}

// WithSolver swaps the linear-algebra backend. Panics on nil.
func WithSolver(s solver.Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// WithLogger routes pipeline debug records to l. A nil l restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithConcurrency bounds Batch parallelism. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// gatherOptions resolves opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{
		divider:     formula.DefaultDivider,
		solver:      solver.Default(),
		logger:      discardLogger(),
		concurrency: DefaultConcurrency,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// formulaOptions projects the parsing knobs onto formula.Option.
func (o Options) formulaOptions() []formula.Option {
	fo := []formula.Option{formula.WithDivider(o.divider)}
	if o.knownElements {
		fo = append(fo, formula.WithKnownElements())
	}

	return fo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
