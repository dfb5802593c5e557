package balance_test

import (
	"testing"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/stretchr/testify/require"
)

// TestVerifyBalanced sums coefficient × count per side.
func TestVerifyBalanced(t *testing.T) {
	rep, err := balance.Verify("2H2 + O2 -> 2H2O")
	require.NoError(t, err)
	require.True(t, rep.Balanced)
	require.NoError(t, rep.Err())
	require.Equal(t, []int64{2, 1, 2}, rep.Coefficients)
	require.Equal(t, []balance.ElementBalance{
		{Symbol: "H", Left: 4, Right: 4},
		{Symbol: "O", Left: 2, Right: 2},
	}, rep.Elements)
}

// TestVerifyUnbalanced names the first element that is not conserved.
func TestVerifyUnbalanced(t *testing.T) {
	rep, err := balance.Verify("H2 + O2 -> H2O")
	require.NoError(t, err)
	require.False(t, rep.Balanced)
	require.True(t, rep.Elements[0].Balanced())
	require.False(t, rep.Elements[1].Balanced())

	err = rep.Err()
	require.ErrorIs(t, err, balance.ErrUnbalanced)
	require.Contains(t, err.Error(), "O: left 2, right 1")
}

// TestVerifyParseErrors surfaces parse failures as errors, not reports.
func TestVerifyParseErrors(t *testing.T) {
	_, err := balance.Verify("2H2 + O2")
	require.ErrorIs(t, err, balance.ErrMalformedReaction)

	_, err = balance.Verify("2H2 + O2 -> 2H2O!")
	require.ErrorIs(t, err, balance.ErrInvalidCharacter)

	rep, err := balance.Verify("2H2 + O2 = 2H2O", balance.WithDivider("="))
	require.NoError(t, err)
	require.True(t, rep.Balanced)
}

// TestVerifyTotalOverflow fails instead of wrapping a side total.
func TestVerifyTotalOverflow(t *testing.T) {
	_, err := balance.Verify("H9223372036854775807 + H -> H2")
	require.ErrorIs(t, err, balance.ErrCountOverflow)
	require.Contains(t, err.Error(), "left side")

	rep, err := balance.Verify("H9223372036854775807 -> H9223372036854775807")
	require.NoError(t, err)
	require.True(t, rep.Balanced)
}
