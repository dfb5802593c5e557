// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chembalance/formula"
)

// ElementBalance holds the atom totals of one element on both sides.
type ElementBalance struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Left   int64  `json:"left" yaml:"left"`
	Right  int64  `json:"right" yaml:"right"`
}

// Balanced reports Left == Right.
func (e ElementBalance) Balanced() bool { return e.Left == e.Right }

// Report is the conservation check of a coefficient-annotated equation.
type Report struct {
	Text         string           `json:"text" yaml:"text"`
	Balanced     bool             `json:"balanced" yaml:"balanced"`
	Coefficients []int64          `json:"coefficients" yaml:"coefficients"`
	Elements     []ElementBalance `json:"elements" yaml:"elements"` // vocabulary order
}

// Err returns nil for a balanced report, otherwise ErrUnbalanced naming the
// first element whose totals differ.
func (r *Report) Err() error {
	if r.Balanced {
		return nil
	}
	for _, e := range r.Elements {
		if !e.Balanced() {
			return fmt.Errorf("%s: left %d, right %d: %w", e.Symbol, e.Left, e.Right, ErrUnbalanced)
		}
	}

	return ErrUnbalanced
}

// Verify re-parses text, reading each leading number as the component's
// coefficient, and sums coefficient × atom count per element on both sides.
// Parse errors are returned as error; an imbalance is reported through
// Report.Balanced / Report.Err.
//
// Complexity: O(len(text) + |vocab|·|components|).
func Verify(text string, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	fo := o.formulaOptions()

	if err := formula.Validate(text, fo...); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	r, err := formula.SplitReaction(text, fo...)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	left, err := formula.ParseSide(r.Left, r.Vocabulary, formula.SideLeft, fo...)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	right, err := formula.ParseSide(r.Right, r.Vocabulary, formula.SideRight, fo...)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	rep := &Report{Text: text, Balanced: true}
	for _, c := range left {
		rep.Coefficients = append(rep.Coefficients, c.Multiplier)
	}
	for _, c := range right {
		rep.Coefficients = append(rep.Coefficients, c.Multiplier)
	}
	for _, s := range r.Vocabulary.Symbols() {
		e := ElementBalance{Symbol: string(s)}
		if e.Left, err = sumAtoms(left, s); err != nil {
			return nil, fmt.Errorf("verify: left side: %w", err)
		}
		if e.Right, err = sumAtoms(right, s); err != nil {
			return nil, fmt.Errorf("verify: right side: %w", err)
		}
		rep.Balanced = rep.Balanced && e.Balanced()
		rep.Elements = append(rep.Elements, e)
	}

	return rep, nil
}

// sumAtoms totals the atoms of s over cs, failing ErrCountOverflow beyond int64.
func sumAtoms(cs []formula.Component, s formula.Symbol) (int64, error) {
	var total int64
	for _, c := range cs {
		n := c.Atoms[s]
		if total > math.MaxInt64-n {
			return 0, fmt.Errorf("%s: %w", s, ErrCountOverflow)
		}
		total += n
	}

	return total, nil
}
