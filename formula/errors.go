// SPDX-License-Identifier: MIT
// Package: formula
//
// errors.go — sentinel errors for the formula package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context (offending rune, offset, component) with %w.

package formula

import "errors"

// ErrInvalidCharacter indicates the reaction text contains a character outside
// the accepted set (letters, digits, '+', whitespace and the divider runes), or
// a character that is legal in general but not at its position (a lowercase
// letter not continuing a symbol, a number starting with '0').
var ErrInvalidCharacter = errors.New("formula: invalid character")

// ErrMalformedReaction indicates a structural problem: missing or repeated
// divider, an empty side or component, a zero multiplier or count.
var ErrMalformedReaction = errors.New("formula: malformed reaction")

// ErrUnknownElement indicates a symbol not present in the periodic table while
// WithKnownElements is active.
var ErrUnknownElement = errors.New("formula: unknown element")

// ErrCountOverflow indicates an atom count or multiplier that does not fit int64.
var ErrCountOverflow = errors.New("formula: count overflows int64")

// ErrNotInVocabulary indicates a component mentions a symbol the supplied
// Vocabulary does not contain.
var ErrNotInVocabulary = errors.New("formula: symbol not in vocabulary")
