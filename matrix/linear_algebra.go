// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on any Matrix implementation:
// transpose, matrix-vector product and reduced row echelon
// form. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - Arithmetic is exact (math/big.Rat); there is no epsilon policy and no
//     pivoting for stability, only for finding a non-zero pivot.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opRREF      = "RREF"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, cloning through the interface when m is
// another implementation. The returned matrix is always a private copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v *big.Rat
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}

// Transpose returns a new matrix mᵀ; the input is never mutated.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i].Set(src.data[i*cols+j])
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil without nil cells; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]*big.Rat, d.r)
	term := new(big.Rat) // scratch for a(i,j)*x(j)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		acc := new(big.Rat)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j].Sign() == 0 {
				continue // skip zero multiplications
			}
			acc.Add(acc, term.Mul(d.data[base+j], x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// RREF computes the reduced row echelon form of m by Gauss–Jordan elimination.
// MAIN DESCRIPTION:
//   - Produce R = rref(m) and the pivot column of every non-zero row of R.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); work on a private copy.
//   - Stage 2: For each column left→right, choose the first row at or below the
//     current pivot row with a non-zero entry, swap it up, scale the pivot to 1
//     and eliminate the column from every other row.
//
// Behavior highlights:
//   - Exact arithmetic: the result is unique, so pivot choice only affects cost.
//   - Input m is read-only.
//
// Returns:
//   - *Dense: the reduced matrix (same shape as m).
//   - []int : pivot columns in ascending order; len(pivots) is the rank.
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil).
//
// Complexity:
//   - Time O(r*c*min(r,c)) rational operations, Space O(r*c).
func RREF(m Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	rows, cols := a.r, a.c
	pivots := make([]int, 0, rows)
	inv := new(big.Rat)  // reciprocal of the pivot
	term := new(big.Rat) // scratch for factor*pivotRow[k]
	var pr, sel, i, k int
	for col := 0; col < cols && pr < rows; col++ {
		// Find the first non-zero entry at or below the pivot row.
		sel = -1
		for i = pr; i < rows; i++ {
			if a.data[i*cols+col].Sign() != 0 {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue // free column
		}
		a.swapRows(pr, sel)

		// Normalize the pivot row so the pivot is exactly 1.
		inv.Inv(a.data[pr*cols+col])
		for k = col; k < cols; k++ {
			a.data[pr*cols+k].Mul(a.data[pr*cols+k], inv)
		}

		// Eliminate the column from every other row.
		for i = 0; i < rows; i++ {
			if i == pr || a.data[i*cols+col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(a.data[i*cols+col])
			for k = col; k < cols; k++ {
				a.data[i*cols+k].Sub(a.data[i*cols+k], term.Mul(factor, a.data[pr*cols+k]))
			}
		}

		pivots = append(pivots, col)
		pr++
	}

	return a, pivots, nil
}

// swapRows exchanges rows i and j in place (pointer swap, no copies).
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}
}
