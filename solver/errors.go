// SPDX-License-Identifier: MIT
// Package: solver
//
// errors.go — sentinel errors for the solver package.
// Backends MUST return these (wrapped with context via %w) so callers can
// branch with errors.Is regardless of the backend in use.

package solver

import "errors"

// ErrNoSolution indicates the homogeneous system admits only the trivial
// solution (or has no unknowns at all).
var ErrNoSolution = errors.New("solver: no non-trivial solution")

// ErrUnderdeterminedSystem indicates more than one free parameter remains,
// so the solution is not unique up to a scalar multiple.
var ErrUnderdeterminedSystem = errors.New("solver: more than one free parameter")
