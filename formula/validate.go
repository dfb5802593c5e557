// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks that text only contains characters a reaction may contain:
// uppercase letters, lowercase letters continuing a symbol, digits (a number
// may not start with '0'), '+', whitespace and the runes of the configured
// divider. It does not check structure; SplitReaction does.
//
// The first offending rune is reported as ErrInvalidCharacter wrapped with
// the rune and its byte offset.
//
// Complexity: O(len(text)).
func Validate(text string, opts ...Option) error {
	o := NewOptions(opts...)

	var prev rune // 0 at text start
	for off, r := range text {
		switch {
		case isUpper(r), r == '+', unicode.IsSpace(r):
			// always allowed
		case isLower(r):
			if !isUpper(prev) && !isLower(prev) {
				return invalidCharf(r, off, "lowercase letter must continue a symbol")
			}
		case isDigit(r):
			if r == '0' && !isDigit(prev) {
				return invalidCharf(r, off, "number must not start with 0")
			}
		case strings.ContainsRune(o.divider, r):
			// part of the divider
		default:
			return invalidCharf(r, off, "not allowed")
		}
		prev = r
	}

	return nil
}

// invalidCharf wraps ErrInvalidCharacter with the offending rune and offset.
func invalidCharf(r rune, off int, why string) error {
	return fmt.Errorf("%q at offset %d: %s: %w", r, off, why, ErrInvalidCharacter)
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
