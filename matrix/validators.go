// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil, has exactly n entries and
// carries no nil cells.
// Time: O(n). Space: O(1).
func ValidateVecLen(x []*big.Rat, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilValue)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for i := range x {
		if x[i] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen[%d]", i), ErrNilValue)
		}
	}

	return nil
}
