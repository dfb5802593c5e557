// SPDX-License-Identifier: MIT

package formula

import (
	"sort"
	"strings"
)

// Symbol is an element symbol such as "H" or "Cl".
type Symbol string

// AtomCounts maps element symbol to atom count within one component.
// Values produced by this package carry every vocabulary symbol (possibly 0).
type AtomCounts map[Symbol]int64

// Vector returns the counts in vocabulary order.
func (a AtomCounts) Vector(v Vocabulary) []int64 {
	out := make([]int64, v.Len())
	for i, s := range v.symbols {
		out[i] = a[s]
	}

	return out
}

// Vocabulary is the lexicographically ordered set of distinct element symbols
// of one reaction. Its order fixes matrix row indices.
type Vocabulary struct {
	symbols []Symbol
	index   map[Symbol]int
}

// NewVocabulary builds a Vocabulary from arbitrary symbols: duplicates are
// dropped and the result is sorted.
func NewVocabulary(symbols ...Symbol) Vocabulary {
	seen := make(map[Symbol]struct{}, len(symbols))
	uniq := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })

	idx := make(map[Symbol]int, len(uniq))
	for i, s := range uniq {
		idx[s] = i
	}

	return Vocabulary{symbols: uniq, index: idx}
}

// Len returns the number of symbols.
func (v Vocabulary) Len() int { return len(v.symbols) }

// Symbols returns a copy of the ordered symbols.
func (v Vocabulary) Symbols() []Symbol {
	return append([]Symbol(nil), v.symbols...)
}

// Strings returns the ordered symbols as plain strings.
func (v Vocabulary) Strings() []string {
	out := make([]string, len(v.symbols))
	for i, s := range v.symbols {
		out[i] = string(s)
	}

	return out
}

// Contains reports whether s is part of the vocabulary.
func (v Vocabulary) Contains(s Symbol) bool {
	_, ok := v.index[s]

	return ok
}

// Template returns fresh counts with every symbol mapped to 0.
func (v Vocabulary) Template() AtomCounts {
	out := make(AtomCounts, len(v.symbols))
	for _, s := range v.symbols {
		out[s] = 0
	}

	return out
}

// String renders the vocabulary as "[C H O]".
func (v Vocabulary) String() string {
	return "[" + strings.Join(v.Strings(), " ") + "]"
}

// Component is one parsed formula term.
type Component struct {
	Text       string     // original text, trimmed
	Formula    string     // Text without the leading multiplier
	Multiplier int64      // leading multiplier; 1 when absent
	Base       AtomCounts // counts of one Formula unit
	Atoms      AtomCounts // Base × Multiplier
}

// Reaction is a reaction split into sides, with its vocabulary.
type Reaction struct {
	Text       string
	Divider    string
	Left       []string // trimmed component texts, in order
	Right      []string // trimmed component texts, in order
	Vocabulary Vocabulary
}

// NumComponents returns len(Left)+len(Right).
func (r Reaction) NumComponents() int { return len(r.Left) + len(r.Right) }
