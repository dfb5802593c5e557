// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/chembalance/formula"
)

// Result is the outcome of balancing one reaction.
type Result struct {
	Input        string   `json:"input" yaml:"input"`
	Output       string   `json:"output" yaml:"output"`
	Divider      string   `json:"divider" yaml:"divider"`
	Vocabulary   []string `json:"vocabulary" yaml:"vocabulary"`
	Components   []string `json:"components" yaml:"components"` // bare formulas, column order
	Coefficients []int64  `json:"coefficients" yaml:"coefficients"`
}

// Balance computes minimal positive integer coefficients for text and
// renders them into it.
// MAIN DESCRIPTION:
//   - Stage 1: formula.Validate against the configured divider.
//   - Stage 2: SplitReaction + BuildSystem (vocabulary, signed count matrix).
//   - Stage 3: Solver.SolveHomogeneous, sign orientation, Normalize.
//   - Stage 4: Render.
//
// Errors (match with errors.Is):
//   - ErrInvalidCharacter, ErrMalformedReaction, ErrUnknownElement,
//     ErrNotInVocabulary, ErrCountOverflow (input).
//   - ErrNoSolution, ErrUnderdeterminedSystem (chemistry).
//   - ErrNormalizationFailed, ErrBalancingInvariantViolation (defects).
//
// Determinism:
//   - Vocabulary order, column order and the pinned free parameter are fixed
//     by the input text, so equal inputs give equal outputs.
func Balance(text string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	fo := o.formulaOptions()
	log := o.logger.With("reaction", text)

	if err := formula.Validate(text, fo...); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	r, err := formula.SplitReaction(text, fo...)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	sys, err := BuildSystem(r, fo...)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	rows, cols := sys.Matrix.Shape()
	log.Debug("system built", "vocabulary", r.Vocabulary.String(), "rows", rows, "cols", cols)

	x, err := o.solver.SolveHomogeneous(sys.Matrix)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	if len(x) != cols {
		return nil, fmt.Errorf("balance: solver returned %d values for %d components: %w", len(x), cols, ErrBalancingInvariantViolation)
	}
	log.Debug("particular solution", "x", ratStrings(x))

	names := formulas(sys)
	x, err = orient(x, names)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	coeffs, err := Normalize(x)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	out, err := Render(text, r.Divider, coeffs)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	log.Debug("balanced", "coefficients", coeffs, "output", out)

	return &Result{
		Input:        text,
		Output:       out,
		Divider:      r.Divider,
		Vocabulary:   r.Vocabulary.Strings(),
		Components:   names,
		Coefficients: coeffs,
	}, nil
}

// Equation balances reactionText split at sideDivider and returns the
// coefficient-annotated text. An empty sideDivider means formula.DefaultDivider.
// A divider that could be mistaken for formula text fails ErrInvalidCharacter.
func Equation(reactionText, sideDivider string) (string, error) {
	if sideDivider == "" {
		sideDivider = formula.DefaultDivider
	}
	if !formula.ValidDivider(sideDivider) {
		return "", fmt.Errorf("balance: divider %q: %w", sideDivider, ErrInvalidCharacter)
	}
	res, err := Balance(reactionText, WithDivider(sideDivider))
	if err != nil {
		return "", err
	}

	return res.Output, nil
}

// formulas returns the bare formula of every component in column order.
func formulas(s *System) []string {
	cs := s.Components()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Formula
	}

	return out
}

func ratStrings(xs []*big.Rat) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.RatString()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
