// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Values cross the interface by copy: At returns a fresh *big.Rat and Set
// stores a copy of its argument, so callers never alias internal cells.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNilValue if v is nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
