// SPDX-License-Identifier: MIT

// Package solver finds one particular solution of a homogeneous linear
// system A·x = 0 over the rationals.
//
// The balancing pipeline only depends on the narrow Solver interface, so the
// algebra backend can be swapped (a CAS, a sparse solver) without touching
// tokenizing, normalizing or rendering. Gauss is the default backend: exact
// Gauss–Jordan elimination on matrix.Dense.
//
// Contract shared by all backends:
//   - columns that are identically zero are not unknowns; their entry is 0;
//   - exactly one free parameter must remain, and it is pinned to 1;
//   - ErrNoSolution when only the trivial solution exists;
//   - ErrUnderdeterminedSystem when more than one free parameter remains.
package solver
