// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"strconv"
	"strings"
)

// Render re-inserts coefficients into the reaction text.
//
// The text is scanned once. A component starts at the first letter or digit
// after the text start, a '+', the divider, or a '>'/'=' rune. At that point
// the next coefficient is written (nothing when it is 1) and any digits the
// component already began with are dropped, since they were its old
// coefficient. Every other byte is copied verbatim, so formula digits,
// spacing and the divider are preserved.
//
// coeffs must hold one strictly positive value per component, in the order
// components appear in the text.
//
// Errors:
//   - ErrBalancingInvariantViolation: a non-positive coefficient, or a count
//     that differs from the number of components found.
//
// Complexity: O(len(text)).
func Render(text, divider string, coeffs []int64) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) + 4*len(coeffs))

	next := 0
	expecting := true
	for i := 0; i < len(text); {
		if divider != "" && strings.HasPrefix(text[i:], divider) {
			sb.WriteString(divider)
			i += len(divider)
			expecting = true
			continue
		}

		ch := text[i]
		switch {
		case ch == '+' || ch == '>' || ch == '=':
			expecting = true
		case expecting && (isUpperByte(ch) || isDigitByte(ch)):
			if next >= len(coeffs) {
				return "", fmt.Errorf("Render: more than %d components: %w", len(coeffs), ErrBalancingInvariantViolation)
			}
			c := coeffs[next]
			if c <= 0 {
				return "", fmt.Errorf("Render: coefficient %d = %d: %w", next, c, ErrBalancingInvariantViolation)
			}
			if c != 1 {
				sb.WriteString(strconv.FormatInt(c, 10))
			}
			next++
			expecting = false
			for i < len(text) && isDigitByte(text[i]) {
				i++ // drop the previous coefficient
			}
			continue
		}
		sb.WriteByte(ch)
		i++
	}
	if next != len(coeffs) {
		return "", fmt.Errorf("Render: %d components for %d coefficients: %w", next, len(coeffs), ErrBalancingInvariantViolation)
	}

	return sb.String(), nil
}

func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
