// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math/big"
)

// Normalize scales a rational solution to the minimal positive integer
// vector with the same ratios.
// MAIN DESCRIPTION:
//   - Stage 1: collect the exact denominators of the non-integral entries
//     (big.Rat keeps p/q in lowest terms, so no decimal rounding is involved).
//   - Stage 2: multiply every entry by their LCM (a single non-integral entry
//     contributes just its own denominator).
//   - Stage 3: verify integrality, divide by the GCD of all entries and
//     require each entry to be a strictly positive int64.
//
// Inputs are not mutated.
//
// Errors:
//   - ErrNormalizationFailed: an entry is still fractional after scaling.
//   - ErrBalancingInvariantViolation: empty or nil input, a zero or negative
//     entry, or an entry beyond int64.
//
// Complexity:
//   - O(n) big-number operations.
func Normalize(x []*big.Rat) ([]int64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Normalize: empty solution: %w", ErrBalancingInvariantViolation)
	}

	// Stage 1–2: LCM of denominators.
	lcm := big.NewInt(1)
	g := new(big.Int)
	for i, v := range x {
		if v == nil {
			return nil, fmt.Errorf("Normalize: entry %d is nil: %w", i, ErrBalancingInvariantViolation)
		}
		if v.IsInt() {
			continue
		}
		d := v.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	scale := new(big.Rat).SetInt(lcm)
	ints := make([]*big.Int, len(x))
	for i, v := range x {
		s := new(big.Rat).Mul(v, scale)
		// Unreachable with an exact LCM; guards the scaling step.
		if !s.IsInt() {
			return nil, fmt.Errorf("Normalize: entry %d = %s after scaling by %s: %w",
				i, s.RatString(), lcm, ErrNormalizationFailed)
		}
		if s.Sign() <= 0 {
			return nil, fmt.Errorf("Normalize: entry %d = %s is not positive: %w",
				i, s.RatString(), ErrBalancingInvariantViolation)
		}
		ints[i] = new(big.Int).Set(s.Num())
	}

	// Stage 3: divide out the common factor.
	g.Set(ints[0])
	for _, v := range ints[1:] {
		g.GCD(nil, nil, g, v)
	}
	out := make([]int64, len(ints))
	for i, v := range ints {
		v.Quo(v, g)
		if !v.IsInt64() {
			return nil, fmt.Errorf("Normalize: entry %d = %s exceeds int64: %w", i, v, ErrBalancingInvariantViolation)
		}
		out[i] = v.Int64()
	}

	return out, nil
}

// orient checks the sign pattern of a solution against the components it
// belongs to and returns a copy whose entries are all positive.
//
// A zero entry means the component cannot take part in any balance (e.g. it
// carries an element found on one side only). Mixed signs mean a component
// would have to move to the other side. Both are ErrNoSolution.
func orient(x []*big.Rat, names []string) ([]*big.Rat, error) {
	if len(x) != len(names) {
		return nil, fmt.Errorf("orient: %d values for %d components: %w", len(x), len(names), ErrBalancingInvariantViolation)
	}
	firstPos, firstNeg := -1, -1
	for i, v := range x {
		switch v.Sign() {
		case 0:
			return nil, fmt.Errorf("component %d %q cannot be balanced: %w", i, names[i], ErrNoSolution)
		case 1:
			if firstPos < 0 {
				firstPos = i
			}
		case -1:
			if firstNeg < 0 {
				firstNeg = i
			}
		}
	}
	if firstPos >= 0 && firstNeg >= 0 {
		return nil, fmt.Errorf("components %q and %q would need opposite sides: %w",
			names[firstPos], names[firstNeg], ErrNoSolution)
	}

	out := make([]*big.Rat, len(x))
	for i, v := range x {
		out[i] = new(big.Rat).Abs(v)
	}

	return out, nil
}
