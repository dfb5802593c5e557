// SPDX-License-Identifier: MIT

// Package matrix offers an exact rational dense matrix and the small set of
// linear-algebra kernels needed to solve stoichiometric systems.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix whose cells are *big.Rat, so no value is ever
//     rounded between ingestion and the final integer coefficients.
//   - Safe accessors (At/Set) returning sentinel errors instead of panicking.
//   - Kernels: Transpose, MatVec and RREF (Gauss–Jordan elimination
//     with deterministic first-non-zero pivoting).
//
// Matrices here are tiny (elements × components), so clarity and exactness
// are preferred over flat float64 fast paths.
package matrix
