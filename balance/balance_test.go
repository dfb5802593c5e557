package balance_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"testing"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/matrix"
	"github.com/katalvlaran/chembalance/solver"
	"github.com/stretchr/testify/require"
)

// TestBalanceScenarios covers reactions with known minimal coefficients.
func TestBalanceScenarios(t *testing.T) {
	cases := []struct {
		in     string
		out    string
		coeffs []int64
	}{
		{"C6H12O6 -> CH3CH2OH + CO2", "C6H12O6 -> 2CH3CH2OH + 2CO2", []int64{1, 2, 2}},
		{"C5H12 + O2 -> CO2 + H2O", "C5H12 + 8O2 -> 5CO2 + 6H2O", []int64{1, 8, 5, 6}},
		{"Z + HC -> ZC2 + H2", "Z + 2HC -> ZC2 + H2", []int64{1, 2, 1, 1}},
		{"C2H6 + O2 -> CO2 + H2O", "2C2H6 + 7O2 -> 4CO2 + 6H2O", []int64{2, 7, 4, 6}},
		{"Na + Cl2 -> NaCl", "2Na + Cl2 -> 2NaCl", []int64{2, 1, 2}},
		{"Fe + O2 -> Fe2O3", "4Fe + 3O2 -> 2Fe2O3", []int64{4, 3, 2}},
		{"KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2", "2KMnO4 + 16HCl -> 2KCl + 2MnCl2 + 8H2O + 5Cl2", []int64{2, 16, 2, 2, 8, 5}},
		{"Al + HCl -> AlCl3 + H2", "2Al + 6HCl -> 2AlCl3 + 3H2", []int64{2, 6, 2, 3}},
		{"NH3 + O2 -> NO + H2O", "4NH3 + 5O2 -> 4NO + 6H2O", []int64{4, 5, 4, 6}},
		{"C8H18 + O2 -> CO2 + H2O", "2C8H18 + 25O2 -> 16CO2 + 18H2O", []int64{2, 25, 16, 18}},
		{"H2+O2->H2O", "2H2+O2->2H2O", []int64{2, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			res, err := balance.Balance(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, res.Output)
			require.Equal(t, tc.coeffs, res.Coefficients)
			require.Equal(t, tc.in, res.Input)
			require.Equal(t, "->", res.Divider)
		})
	}
}

// TestBalanceResultMetadata checks vocabulary and column names.
func TestBalanceResultMetadata(t *testing.T) {
	res, err := balance.Balance("C5H12 + O2 -> CO2 + H2O")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "H", "O"}, res.Vocabulary)
	require.Equal(t, []string{"C5H12", "O2", "CO2", "H2O"}, res.Components)
}

// TestBalanceProperties checks conservation, positivity, minimality and idempotence.
func TestBalanceProperties(t *testing.T) {
	for _, in := range []string{
		"C6H12O6 -> CH3CH2OH + CO2",
		"C3H8 + O2 -> CO2 + H2O",
		"KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2",
		"Cu + HNO3 -> CuNO32 + NO + H2O",
	} {
		res, err := balance.Balance(in)
		require.NoError(t, err, in)

		g := new(big.Int)
		for _, c := range res.Coefficients {
			require.Positive(t, c, in)
			g.GCD(nil, nil, g, big.NewInt(c))
		}
		require.Equal(t, int64(1), g.Int64(), in)

		rep, err := balance.Verify(res.Output)
		require.NoError(t, err, in)
		require.True(t, rep.Balanced, in)
		require.NoError(t, rep.Err())

		again, err := balance.Balance(res.Output)
		require.NoError(t, err, in)
		require.Equal(t, res.Output, again.Output, in)
	}
}

// TestBalanceReplacesMultipliers overwrites coefficients already in the text.
func TestBalanceReplacesMultipliers(t *testing.T) {
	res, err := balance.Balance("4H2 + 3O2 -> H2O")
	require.NoError(t, err)
	require.Equal(t, "2H2 + O2 -> 2H2O", res.Output)
}

// TestBalanceFailures maps unsolvable and malformed input to sentinels.
func TestBalanceFailures(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"H2 -> O2", balance.ErrNoSolution},                         // rank equals unknowns
		{"H2O + H2 -> O2", balance.ErrNoSolution},                   // mixed signs
		{"H2 + O2 -> H2O + X", balance.ErrNoSolution},               // X only on one side
		{"Ca3P2 + H2O -> CaOH2 + PH3", balance.ErrNoSolution},       // CaOH2 is Ca O H2
		{"H2 + O2 -> H2O + H2O2", balance.ErrUnderdeterminedSystem}, // two free parameters
		{"H2 + O2 = H2O", balance.ErrInvalidCharacter},              // '=' with the default divider
		{"h2 + O2 -> H2O", balance.ErrInvalidCharacter},             // lowercase start
		{"H2 + O2 -> H2O;", balance.ErrInvalidCharacter},            // stray punctuation
		{"H2 + O2", balance.ErrMalformedReaction},                   // no divider
		{"H2 -> O2 -> H2O", balance.ErrMalformedReaction},           // two dividers
		{"H2 + -> H2O", balance.ErrMalformedReaction},               // empty component
		{"", balance.ErrMalformedReaction},                          // nothing at all
		{"9223372036854775807H2 -> H2", balance.ErrCountOverflow},   // multiplier × count beyond int64
	}
	for _, tc := range cases {
		_, err := balance.Balance(tc.in)
		require.ErrorIs(t, err, tc.want, tc.in)
	}
}

// TestBalanceKnownElements enables the periodic-table check.
func TestBalanceKnownElements(t *testing.T) {
	_, err := balance.Balance("Z + HC -> ZC2 + H2", balance.WithKnownElements())
	require.ErrorIs(t, err, balance.ErrUnknownElement)

	res, err := balance.Balance("Na + Cl2 -> NaCl", balance.WithKnownElements())
	require.NoError(t, err)
	require.Equal(t, "2Na + Cl2 -> 2NaCl", res.Output)
}

// TestBalanceDividers renders with the configured divider kept verbatim.
func TestBalanceDividers(t *testing.T) {
	cases := []struct{ divider, in, out string }{
		{"=", "H2 + O2 = H2O", "2H2 + O2 = 2H2O"},
		{"=>", "H2 + O2 => H2O", "2H2 + O2 => 2H2O"},
		{"→", "H2 + O2 → H2O", "2H2 + O2 → 2H2O"},
	}
	for _, tc := range cases {
		res, err := balance.Balance(tc.in, balance.WithDivider(tc.divider))
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.out, res.Output)
		require.Equal(t, tc.divider, res.Divider)
	}
}

// TestEquation exercises the string-in string-out entry point.
func TestEquation(t *testing.T) {
	out, err := balance.Equation("C5H12 + O2 -> CO2 + H2O", "")
	require.NoError(t, err)
	require.Equal(t, "C5H12 + 8O2 -> 5CO2 + 6H2O", out)

	out, err = balance.Equation("Fe + O2 = Fe2O3", "=")
	require.NoError(t, err)
	require.Equal(t, "4Fe + 3O2 = 2Fe2O3", out)

	_, err = balance.Equation("H2 + O2 -> H2O", "+")
	require.ErrorIs(t, err, balance.ErrInvalidCharacter)

	_, err = balance.Equation("H2 + O2 -> H2O", "=")
	require.ErrorIs(t, err, balance.ErrInvalidCharacter) // '-' and '>' are not part of "="

	_, err = balance.Equation("H2 + O2 = H2O = H2O2", "=")
	require.ErrorIs(t, err, balance.ErrMalformedReaction)
}

// TestBalanceCustomSolver plugs a backend through solver.Func.
func TestBalanceCustomSolver(t *testing.T) {
	const in = "C6H12O6 -> CH3CH2OH + CO2"

	negated := solver.Func(func(a matrix.Matrix) ([]*big.Rat, error) {
		return []*big.Rat{big.NewRat(-1, 2), big.NewRat(-1, 1), big.NewRat(-1, 1)}, nil
	})
	res, err := balance.Balance(in, balance.WithSolver(negated))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 2}, res.Coefficients)

	short := solver.Func(func(a matrix.Matrix) ([]*big.Rat, error) {
		return []*big.Rat{big.NewRat(1, 1)}, nil
	})
	_, err = balance.Balance(in, balance.WithSolver(short))
	require.ErrorIs(t, err, balance.ErrBalancingInvariantViolation)

	require.Panics(t, func() { balance.WithSolver(nil) })
	require.Panics(t, func() { balance.WithConcurrency(0) })
	require.Panics(t, func() { balance.WithDivider("") })
}

// TestBalanceLogger emits debug records to the configured logger.
func TestBalanceLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := balance.Balance("H2 + O2 -> H2O", balance.WithLogger(log))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "system built")
	require.Contains(t, buf.String(), "msg=balanced")

	buf.Reset()
	_, err = balance.Balance("H2 + O2 -> H2O", balance.WithLogger(nil))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
