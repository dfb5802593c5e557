// SPDX-License-Identifier: MIT

// Package formula turns the text of a chemical reaction into structured data.
//
// It covers the text-facing half of balancing:
//
//   - Validate checks the raw reaction against the accepted character set.
//   - SplitReaction cuts the text into a left and a right side at the side
//     divider (default "->") and each side into components at '+'.
//   - BuildVocabulary derives the ordered set of element symbols; the order is
//     lexicographic and fixes the row order of every downstream matrix.
//   - ParseComponent scans one formula such as "2CH3CH2OH" into per-element
//     atom counts over a Vocabulary.
//
// Element symbols follow chemical notation: one uppercase letter optionally
// followed by lowercase letters ("C", "Cl", "Uue"). Symbols are matched by
// maximal munch, so "NaCl" reads as Na + Cl and "CO" as C + O. By default any
// such symbol is accepted; WithKnownElements restricts them to the periodic
// table.
//
// Parenthesised groups, hydrates and ionic charges are not supported.
//
// Quick example:
//
//	r, _ := formula.SplitReaction("C5H12 + O2 -> CO2 + H2O")
//	r.Vocabulary // [C H O]
//	c, _ := formula.ParseComponent("2H2O", r.Vocabulary)
//	c.Atoms      // map[C:0 H:4 O:2]
package formula
