package balance_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/stretchr/testify/require"
)

func rats(xs ...string) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, s := range xs {
		out[i], _ = new(big.Rat).SetString(s)
	}

	return out
}

// TestNormalize scales rational vectors to minimal integers.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   []string
		want []int64
	}{
		{[]string{"1/2", "1", "1"}, []int64{1, 2, 2}},
		{[]string{"1/6", "4/3", "5/6", "1"}, []int64{1, 8, 5, 6}},
		{[]string{"1/3", "1/2", "1"}, []int64{2, 3, 6}},
		{[]string{"2", "4", "6"}, []int64{1, 2, 3}},
		{[]string{"1/2", "1/3", "1/4"}, []int64{6, 4, 3}},
		{[]string{"7"}, []int64{1}},
	}
	for _, tc := range cases {
		in := rats(tc.in...)
		got, err := balance.Normalize(in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
		require.Equal(t, tc.in[0], in[0].RatString(), "input must not be mutated")
	}
}

// TestNormalizeInvariant rejects vectors that cannot be coefficients.
func TestNormalizeInvariant(t *testing.T) {
	for _, in := range [][]*big.Rat{
		nil,
		{},
		rats("1", "0", "2"),
		rats("1/2", "-1"),
		{big.NewRat(1, 1), nil},
		rats("1", "9223372036854775808"),
	} {
		_, err := balance.Normalize(in)
		require.ErrorIs(t, err, balance.ErrBalancingInvariantViolation)
	}
}
