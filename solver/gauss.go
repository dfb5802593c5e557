// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/chembalance/matrix"
)

// Gauss solves homogeneous systems by exact Gauss–Jordan elimination.
// The zero value is ready to use and safe for concurrent use.
type Gauss struct{}

var _ Solver = Gauss{}

// SolveHomogeneous returns the particular solution of a·x = 0 whose free
// parameter equals 1.
// MAIN DESCRIPTION:
//   - Unknowns are the columns with at least one non-zero entry.
//   - The active sub-matrix is reduced to RREF; nullity = unknowns − rank.
//   - With nullity 1 the free unknown is pinned to 1 and every pivot unknown
//     is read off its row: x_p = −R[row][free].
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrNoSolution: no unknowns, or nullity 0.
//   - ErrUnderdeterminedSystem: nullity > 1 (the error names the count).
//
// Complexity:
//   - Time O(r*c*min(r,c)) rational operations, Space O(r*c).
func (Gauss) SolveHomogeneous(a matrix.Matrix) ([]*big.Rat, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Gauss: %w", err)
	}
	rows, cols := a.Rows(), a.Cols()

	// Stage 1: collect active columns and copy them into a compact matrix.
	active := make([]int, 0, cols)
	var (
		v   *big.Rat
		err error
	)
	var zero bool
	for j := 0; j < cols; j++ {
		if zero, err = isZeroColumn(a, j); err != nil {
			return nil, fmt.Errorf("Gauss: %w", err)
		}
		if !zero {
			active = append(active, j)
		}
	}
	if len(active) == 0 {
		return nil, fmt.Errorf("Gauss: every column is zero: %w", ErrNoSolution)
	}

	sub, err := matrix.NewDense(rows, len(active))
	if err != nil {
		return nil, fmt.Errorf("Gauss: %w", err)
	}
	for k, j := range active {
		for i := 0; i < rows; i++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("Gauss: %w", err)
			}
			if err = sub.Set(i, k, v); err != nil {
				return nil, fmt.Errorf("Gauss: %w", err)
			}
		}
	}

	// Stage 2: reduce and classify by nullity.
	r, pivots, err := matrix.RREF(sub)
	if err != nil {
		return nil, fmt.Errorf("Gauss: %w", err)
	}
	switch nullity := len(active) - len(pivots); {
	case nullity == 0:
		return nil, fmt.Errorf("Gauss: rank %d equals %d unknowns: %w", len(pivots), len(active), ErrNoSolution)
	case nullity > 1:
		return nil, fmt.Errorf("Gauss: %d free parameters: %w", nullity, ErrUnderdeterminedSystem)
	}
	free := freeColumn(pivots, len(active))

	// Stage 3: pin the free unknown to 1 and back-substitute.
	x := make([]*big.Rat, cols)
	for j := range x {
		x[j] = new(big.Rat)
	}
	x[active[free]].SetInt64(1)
	for row, p := range pivots {
		if v, err = r.At(row, free); err != nil {
			return nil, fmt.Errorf("Gauss: %w", err)
		}
		x[active[p]].Neg(v)
	}

	return x, nil
}

// isZeroColumn reports whether column col of a holds only zeros. A Dense is
// scanned in place; other implementations go through At.
func isZeroColumn(a matrix.Matrix, col int) (bool, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.IsZeroCol(col)
	}
	for i := 0; i < a.Rows(); i++ {
		v, err := a.At(i, col)
		if err != nil {
			return false, err
		}
		if v.Sign() != 0 {
			return false, nil
		}
	}

	return true, nil
}

// freeColumn returns the single column index in [0,n) absent from pivots.
// pivots is ascending and has exactly n-1 entries.
func freeColumn(pivots []int, n int) int {
	for k, p := range pivots {
		if p != k {
			return k
		}
	}

	return n - 1
}
