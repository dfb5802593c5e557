// SPDX-License-Identifier: MIT
// Package: balance
//
// errors.go — sentinel errors surfaced by Balance.
//
// The parsing and solving sentinels are defined by the packages that detect
// them and re-exported here, so callers of this package only need one import
// to branch with errors.Is. Nothing is retried: the pipeline is
// deterministic.

package balance

import (
	"errors"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/solver"
)

var (
	// ErrInvalidCharacter indicates the input failed character validation.
	ErrInvalidCharacter = formula.ErrInvalidCharacter

	// ErrMalformedReaction indicates a missing or repeated divider, or an empty side or component.
	ErrMalformedReaction = formula.ErrMalformedReaction

	// ErrNotInVocabulary indicates a component symbol missing from the reaction vocabulary.
	ErrNotInVocabulary = formula.ErrNotInVocabulary

	// ErrCountOverflow indicates an atom count, multiplier or total beyond int64.
	ErrCountOverflow = formula.ErrCountOverflow

	// ErrUnknownElement indicates a symbol outside the periodic table (WithKnownElements).
	ErrUnknownElement = formula.ErrUnknownElement

	// ErrNoSolution indicates no positive balance exists.
	ErrNoSolution = solver.ErrNoSolution

	// ErrUnderdeterminedSystem indicates more than one independent free parameter.
	ErrUnderdeterminedSystem = solver.ErrUnderdeterminedSystem
)

// ErrNormalizationFailed indicates scaling by the denominators' LCM left a
// non-integral entry. It signals an arithmetic defect, never bad input.
var ErrNormalizationFailed = errors.New("balance: normalization failed")

// ErrBalancingInvariantViolation indicates an internal invariant broke:
// a non-positive or oversized coefficient, or a coefficient count that does
// not match the number of components.
var ErrBalancingInvariantViolation = errors.New("balance: invariant violation")

// ErrUnbalanced indicates a coefficient-annotated equation does not conserve
// at least one element (see Verify).
var ErrUnbalanced = errors.New("balance: equation is not balanced")
