// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Rat cells with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and still matches
// the sentinel through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     every cell is a distinct, non-nil *big.Rat owned by the matrix.
type Dense struct {
	r, c int        // row and column counts (> 0)
	data []*big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one *big.Rat per cell (zero value is 0/1).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]*big.Rat, rows*cols)
	for k := range buf {
		buf[k] = new(big.Rat) // each cell owns its storage; no shared pointers
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromInts builds a Dense from a row-wise integer literal.
// All rows must have the same, non-zero length.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when row lengths differ (wrapped with the row index).
//
// Complexity: O(r*c).
func NewDenseFromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromInts: row %d has %d cols, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		for j, v := range row {
			m.data[i*cols+j].SetInt64(v)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Complexity: O(1) plus the size of the rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNilValue for a nil v.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v) // copy into owned cell

	return nil
}

// IsZeroCol reports whether every entry of column col is zero.
// Returns ErrOutOfRange for an invalid column.
// Complexity: O(r).
func (m *Dense) IsZeroCol(col int) (bool, error) {
	if col < 0 || col >= m.c {
		return false, denseErrorf("IsZeroCol", 0, col, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+col].Sign() != 0 {
			return false, nil
		}
	}

	return true, nil
}

// Clone returns a deep copy: every cell is copied into fresh storage.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]*big.Rat, len(m.data))
	for k, v := range m.data {
		cp[k] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String provides a readable row-wise dump for diagnostics.
// Integers print without a denominator ("2"), fractions as "p/q".
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
