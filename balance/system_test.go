package balance_test

import (
	"testing"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/stretchr/testify/require"
)

// TestBuildSystemMatrix checks row/column layout and product negation.
func TestBuildSystemMatrix(t *testing.T) {
	r, err := formula.SplitReaction("C6H12O6 -> CH3CH2OH + CO2")
	require.NoError(t, err)

	sys, err := balance.BuildSystem(r)
	require.NoError(t, err)
	require.Equal(t, "[6, -2, -1]\n[12, -6, 0]\n[6, -1, -2]\n", sys.Matrix.String())
	require.Len(t, sys.Components(), 3)
	require.Equal(t, "C6H12O6", sys.Components()[0].Formula)
}

// TestBuildSystemIgnoresMultipliers builds columns from one formula unit.
func TestBuildSystemIgnoresMultipliers(t *testing.T) {
	r, err := formula.SplitReaction("2H2 + O2 -> 3H2O")
	require.NoError(t, err)

	sys, err := balance.BuildSystem(r)
	require.NoError(t, err)
	require.Equal(t, "[2, 0, -2]\n[0, 2, -1]\n", sys.Matrix.String())
	require.Equal(t, int64(3), sys.Right[0].Multiplier)
}

// TestBuildSystemErrors reports parse failures and empty reactions.
func TestBuildSystemErrors(t *testing.T) {
	_, err := balance.BuildSystem(formula.Reaction{})
	require.ErrorIs(t, err, balance.ErrMalformedReaction)

	r, err := formula.SplitReaction("H2 + O2 -> H0")
	require.NoError(t, err)
	_, err = balance.BuildSystem(r)
	require.ErrorIs(t, err, balance.ErrMalformedReaction)
	require.Contains(t, err.Error(), "right side component 0")
}
