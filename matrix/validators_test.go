// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chembalance/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers nil interfaces, typed-nil Dense and live matrices.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	live, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil interface", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", live, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateNotNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateVecLen covers nil vectors, length mismatch and nil cells.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	one := big.NewRat(1, 1)
	tests := []struct {
		name string
		x    []*big.Rat
		n    int
		want error
	}{
		{"nil vector", nil, 0, matrix.ErrNilValue},
		{"short", []*big.Rat{one}, 2, matrix.ErrDimensionMismatch},
		{"nil cell", []*big.Rat{one, nil}, 2, matrix.ErrNilValue},
		{"ok", []*big.Rat{one, one}, 2, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecLen(tc.x, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
