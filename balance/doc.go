// SPDX-License-Identifier: MIT

// Package balance computes stoichiometric coefficients for a chemical
// reaction and renders them back into the reaction text.
//
// Pipeline (each stage only depends on the ones before it):
//
//	Validate → SplitReaction/ParseComponent → Vocabulary   (package formula)
//	BuildSystem    — signed atom-count matrix, rows = elements, cols = components
//	Solver         — one particular rational solution of A·x = 0 (package solver)
//	orientation    — all entries must share one sign; zeros mean a component cannot react
//	Normalize      — exact LCM/GCD scaling to minimal positive integers
//	Render         — coefficients re-inserted into the original text, "1" omitted
//
// Example:
//
//	out, err := balance.Equation("C5H12 + O2 -> CO2 + H2O", "->")
//	// out == "C5H12 + 8O2 -> 5CO2 + 6H2O"
//
// A coefficient already present in the input ("2H2O") is read as a component
// multiplier by the tokenizer but replaced on output, so balancing a balanced
// equation returns it unchanged.
//
// Every call is a pure function of its input: no shared mutable state, safe
// for concurrent use. Batch fans independent equations out over a bounded
// worker group.
package balance
