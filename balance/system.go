// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"

	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// System is the linear system of one reaction.
//
// Matrix has one row per vocabulary symbol (vocabulary order) and one column
// per component, left side first. Reactant columns hold positive atom counts,
// product columns the negated counts, so a balance x satisfies Matrix·x = 0.
type System struct {
	Reaction formula.Reaction
	Left     []formula.Component
	Right    []formula.Component
	Matrix   *matrix.Dense
}

// Components returns left and right components in column order.
func (s *System) Components() []formula.Component {
	out := make([]formula.Component, 0, len(s.Left)+len(s.Right))
	out = append(out, s.Left...)

	return append(out, s.Right...)
}

// BuildSystem parses every component of r and assembles the coefficient matrix.
// MAIN DESCRIPTION:
//   - Each component becomes a row of bare-formula atom counts (a leading
//     multiplier is a coefficient, not part of the formula); product rows are
//     negated. The component-major matrix is then transposed so rows are
//     elements and columns are components.
//
// Errors:
//   - Parse errors from formula.ParseSide, wrapped with side and index.
//   - ErrMalformedReaction when r has no components or no symbols.
//
// Complexity:
//   - Time O(len(text) + |vocab|·|components|).
func BuildSystem(r formula.Reaction, opts ...formula.Option) (*System, error) {
	if r.NumComponents() == 0 || r.Vocabulary.Len() == 0 {
		return nil, fmt.Errorf("BuildSystem: %d components over %d symbols: %w",
			r.NumComponents(), r.Vocabulary.Len(), ErrMalformedReaction)
	}
	left, err := formula.ParseSide(r.Left, r.Vocabulary, formula.SideLeft, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildSystem: %w", err)
	}
	right, err := formula.ParseSide(r.Right, r.Vocabulary, formula.SideRight, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildSystem: %w", err)
	}

	// Component-major rows: one row per component, one column per symbol.
	rows := make([][]int64, 0, len(left)+len(right))
	for _, c := range left {
		rows = append(rows, c.Base.Vector(r.Vocabulary))
	}
	for _, c := range right {
		v := c.Base.Vector(r.Vocabulary)
		for k := range v {
			v[k] = -v[k]
		}
		rows = append(rows, v)
	}
	byComponent, err := matrix.NewDenseFromInts(rows)
	if err != nil {
		return nil, fmt.Errorf("BuildSystem: %w", err)
	}
	m, err := matrix.Transpose(byComponent)
	if err != nil {
		return nil, fmt.Errorf("BuildSystem: %w", err)
	}

	return &System{Reaction: r, Left: left, Right: right, Matrix: m}, nil
}
