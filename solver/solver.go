// SPDX-License-Identifier: MIT

package solver

import (
	"math/big"

	"github.com/katalvlaran/chembalance/matrix"
)

// Solver solves A·x = 0 for one particular non-trivial solution.
// The returned slice has len == a.Cols() and is indexed by column.
type Solver interface {
	SolveHomogeneous(a matrix.Matrix) ([]*big.Rat, error)
}

// Func adapts an ordinary function to the Solver interface.
type Func func(a matrix.Matrix) ([]*big.Rat, error)

// SolveHomogeneous calls f(a).
func (f Func) SolveHomogeneous(a matrix.Matrix) ([]*big.Rat, error) { return f(a) }

// Default returns the default backend.
func Default() Solver { return Gauss{} }
