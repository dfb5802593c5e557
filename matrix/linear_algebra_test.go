package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chembalance/matrix"
	"github.com/stretchr/testify/require"
)

// rats converts "p/q" literals for compact expectations.
func rats(t *testing.T, ss ...string) []*big.Rat {
	t.Helper()
	out := make([]*big.Rat, len(ss))
	for i, s := range ss {
		r, ok := new(big.Rat).SetString(s)
		require.True(t, ok, "bad literal %q", s)
		out[i] = r
	}
	return out
}

// ratStrings renders a vector for comparisons.
func ratStrings(xs []*big.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.RatString()
	}
	return out
}

// TestTranspose flips a 2×3 matrix and leaves the input untouched.
func TestTranspose(t *testing.T) {
	m, err := matrix.NewDenseFromInts([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String()) // input unchanged

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec checks y = m·x and the length validator.
func TestMatVec(t *testing.T) {
	m, err := matrix.NewDenseFromInts([][]int64{{6, -2, -1}, {12, -6, 0}, {6, -1, -2}})
	require.NoError(t, err)

	y, err := matrix.MatVec(m, rats(t, "1/2", "1", "1"))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0", "0"}, ratStrings(y)) // a balanced solution

	_, err = matrix.MatVec(m, rats(t, "1", "2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(m, []*big.Rat{big.NewRat(1, 1), nil, big.NewRat(1, 1)})
	require.ErrorIs(t, err, matrix.ErrNilValue)
}

// TestRREF reduces the glucose fermentation matrix.
func TestRREF(t *testing.T) {
	m, err := matrix.NewDenseFromInts([][]int64{{6, -2, -1}, {12, -6, 0}, {6, -1, -2}})
	require.NoError(t, err)

	r, pivots, err := matrix.RREF(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots) // rank 2, column 2 free
	require.Equal(t, "[1, 0, -1/2]\n[0, 1, -1]\n[0, 0, 0]\n", r.String())
	require.Equal(t, "[6, -2, -1]\n[12, -6, 0]\n[6, -1, -2]\n", m.String()) // input unchanged
}

// TestRREFNeedsRowSwap exercises a zero leading entry.
func TestRREFNeedsRowSwap(t *testing.T) {
	m, err := matrix.NewDenseFromInts([][]int64{{0, 2}, {3, 0}})
	require.NoError(t, err)

	r, pivots, err := matrix.RREF(m)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots)
	require.Equal(t, "[1, 0]\n[0, 1]\n", r.String())
}
