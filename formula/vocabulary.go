// SPDX-License-Identifier: MIT

package formula

import "fmt"

// BuildVocabulary returns the distinct element symbols of text in
// lexicographic order. Repeated calls on the same text are identical.
//
// Only the symbol rule is applied here (uppercase + lowercase run); other
// runes are skipped, so call Validate first for untrusted input.
//
// Errors:
//   - ErrUnknownElement for a symbol outside the periodic table (WithKnownElements).
//
// Complexity: O(len(text) + k log k) for k distinct symbols.
func BuildVocabulary(text string, opts ...Option) (Vocabulary, error) {
	o := NewOptions(opts...)

	var symbols []Symbol
	var sym Symbol
	for i := 0; i < len(text); {
		if !isUpper(rune(text[i])) {
			i++
			continue
		}
		sym, i = scanSymbol(text, i)
		if o.knownElements && !IsKnownElement(sym) {
			return Vocabulary{}, fmt.Errorf("BuildVocabulary: %s: %w", sym, ErrUnknownElement)
		}
		symbols = append(symbols, sym)
	}

	return NewVocabulary(symbols...), nil
}
