// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"strings"
)

// Side names used in error context.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// SplitReaction cuts text at the configured divider into two sides, each
// side at '+' into trimmed component texts, and builds the vocabulary.
//
// Errors:
//   - ErrMalformedReaction: the divider is missing or repeated, a side is
//     empty, or a side has an empty component ("A + -> B").
//   - ErrUnknownElement from BuildVocabulary.
//
// Complexity: O(len(text) + k log k).
func SplitReaction(text string, opts ...Option) (Reaction, error) {
	o := NewOptions(opts...)

	switch n := strings.Count(text, o.divider); {
	case n == 0:
		return Reaction{}, fmt.Errorf("SplitReaction: divider %q not found: %w", o.divider, ErrMalformedReaction)
	case n > 1:
		return Reaction{}, fmt.Errorf("SplitReaction: divider %q appears %d times: %w", o.divider, n, ErrMalformedReaction)
	}
	lhs, rhs, _ := strings.Cut(text, o.divider)

	left, err := splitSide(lhs, SideLeft)
	if err != nil {
		return Reaction{}, err
	}
	right, err := splitSide(rhs, SideRight)
	if err != nil {
		return Reaction{}, err
	}
	vocab, err := BuildVocabulary(text, opts...)
	if err != nil {
		return Reaction{}, err
	}

	return Reaction{
		Text:       text,
		Divider:    o.divider,
		Left:       left,
		Right:      right,
		Vocabulary: vocab,
	}, nil
}

// splitSide splits one side at '+' and trims each component.
func splitSide(side, name string) ([]string, error) {
	if strings.TrimSpace(side) == "" {
		return nil, fmt.Errorf("SplitReaction: %s side is empty: %w", name, ErrMalformedReaction)
	}
	parts := strings.Split(side, componentSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fmt.Errorf("SplitReaction: %s side component %d is empty: %w", name, i, ErrMalformedReaction)
		}
	}

	return parts, nil
}

// ParseSide parses every component text of one side over vocab.
// Errors from ParseComponent are wrapped with the side and component index.
func ParseSide(parts []string, vocab Vocabulary, side string, opts ...Option) ([]Component, error) {
	out := make([]Component, 0, len(parts))
	for i, p := range parts {
		c, err := ParseComponent(p, vocab, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s side component %d: %w", side, i, err)
		}
		out = append(out, c)
	}

	return out, nil
}
