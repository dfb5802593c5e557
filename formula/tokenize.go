// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseComponent scans one component into atom counts over vocab.
//
// Scan rules (left to right):
//   - Leading digits form the whole-component multiplier (default 1).
//   - An uppercase letter plus any following lowercase letters is one symbol.
//   - Digits right after a symbol are its count; none means 1.
//   - Repeated symbols accumulate ("CH3CH2OH" has C=2, H=6, O=1).
//
// Atoms holds count × multiplier per symbol, Base the counts of one formula
// unit. Both carry every vocabulary symbol.
//
// Errors:
//   - ErrMalformedReaction: empty component, no formula after the multiplier,
//     zero multiplier or zero count.
//   - ErrInvalidCharacter: a rune that cannot appear inside a formula.
//   - ErrNotInVocabulary: a symbol vocab does not contain.
//   - ErrUnknownElement: a symbol outside the periodic table (WithKnownElements).
//   - ErrCountOverflow: a number or product beyond int64.
//
// Complexity: O(len(text) + vocab.Len()).
func ParseComponent(text string, vocab Vocabulary, opts ...Option) (Component, error) {
	o := NewOptions(opts...)
	s := strings.TrimSpace(text)
	if s == "" {
		return Component{}, fmt.Errorf("ParseComponent: empty component: %w", ErrMalformedReaction)
	}

	// Stage 1: optional leading multiplier.
	multiplier, i, err := scanNumber(s, 0)
	if err != nil {
		return Component{}, fmt.Errorf("ParseComponent(%q): multiplier: %w", s, err)
	}
	if i == 0 {
		multiplier = 1
	} else if multiplier == 0 {
		return Component{}, fmt.Errorf("ParseComponent(%q): zero multiplier: %w", s, ErrMalformedReaction)
	}
	if i == len(s) {
		return Component{}, fmt.Errorf("ParseComponent(%q): no formula after multiplier: %w", s, ErrMalformedReaction)
	}
	start := i

	// Stage 2: symbol/count pairs.
	base := vocab.Template()
	var (
		sym   Symbol
		count int64
		next  int
	)
	for i < len(s) {
		r := rune(s[i])
		if !isUpper(r) {
			return Component{}, fmt.Errorf("ParseComponent(%q): %w", s, invalidCharf(r, i, "expected element symbol"))
		}
		sym, i = scanSymbol(s, i)
		if err = checkSymbol(sym, vocab, o); err != nil {
			return Component{}, fmt.Errorf("ParseComponent(%q): %w", s, err)
		}

		count, next, err = scanNumber(s, i)
		if err != nil {
			return Component{}, fmt.Errorf("ParseComponent(%q): count of %s: %w", s, sym, err)
		}
		if next == i {
			count = 1
		} else if count == 0 {
			return Component{}, fmt.Errorf("ParseComponent(%q): zero count of %s: %w", s, sym, ErrMalformedReaction)
		}
		i = next

		if base[sym], err = addChecked(base[sym], count); err != nil {
			return Component{}, fmt.Errorf("ParseComponent(%q): %s: %w", s, sym, err)
		}
	}

	// Stage 3: apply the multiplier.
	atoms := make(AtomCounts, len(base))
	for k, v := range base {
		if atoms[k], err = mulChecked(v, multiplier); err != nil {
			return Component{}, fmt.Errorf("ParseComponent(%q): %s: %w", s, k, err)
		}
	}

	return Component{
		Text:       s,
		Formula:    s[start:],
		Multiplier: multiplier,
		Base:       base,
		Atoms:      atoms,
	}, nil
}

// scanSymbol reads an uppercase letter and the lowercase run after it.
// s[i] must be uppercase.
func scanSymbol(s string, i int) (Symbol, int) {
	j := i + 1
	for j < len(s) && isLower(rune(s[j])) {
		j++
	}

	return Symbol(s[i:j]), j
}

// scanNumber reads the decimal run starting at i. When no digit is present it
// returns (0, i, nil).
func scanNumber(s string, i int) (int64, int, error) {
	j := i
	for j < len(s) && isDigit(rune(s[j])) {
		j++
	}
	if j == i {
		return 0, i, nil
	}
	v, err := strconv.ParseInt(s[i:j], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, j, fmt.Errorf("%q: %w", s[i:j], ErrCountOverflow)
		}
		return 0, j, fmt.Errorf("%q: %w", s[i:j], ErrMalformedReaction)
	}

	return v, j, nil
}

// checkSymbol applies vocabulary membership and the optional periodic table.
func checkSymbol(sym Symbol, vocab Vocabulary, o Options) error {
	if o.knownElements && !IsKnownElement(sym) {
		return fmt.Errorf("%s: %w", sym, ErrUnknownElement)
	}
	if !vocab.Contains(sym) {
		return fmt.Errorf("%s: %w", sym, ErrNotInVocabulary)
	}

	return nil
}

// addChecked returns a+b for non-negative operands or ErrCountOverflow.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrCountOverflow
	}

	return sum, nil
}

// mulChecked returns a*b for non-negative operands or ErrCountOverflow.
func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || p < 0 {
		return 0, ErrCountOverflow
	}

	return p, nil
}
