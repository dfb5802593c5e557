// Package chembalance balances chemical reaction equations exactly.
//
// Given a reaction such as "C5H12 + O2 -> CO2 + H2O" it finds the smallest
// strictly positive integer coefficients that conserve every element and
// writes them back into the text: "C5H12 + 8O2 -> 5CO2 + 6H2O".
//
// How it works:
//
//	text ──Validate──► SplitReaction ──► Vocabulary (sorted symbols)
//	                         │
//	                         ▼
//	        BuildSystem: A[element][component], products negated
//	                         │
//	                         ▼
//	        Solver: RREF over math/big.Rat, nullity must be 1
//	                         │
//	                         ▼
//	        Normalize: ×LCM(denominators), ÷GCD ──► Render
//
// Under the hood, everything is organized under these subpackages:
//
//	formula/ — character validation, vocabulary, component tokenizer
//	matrix/  — exact rational Dense matrix, Transpose/MatVec/RREF
//	solver/  — homogeneous solver interface + Gauss–Jordan backend
//	balance/ — Balance, Equation, Verify and the concurrent Batch
//	config/  — viper-backed settings with validator tags
//	cli/     — cobra commands: balance, check, batch
//
// Quick example:
//
//	out, err := balance.Equation("Fe + O2 -> Fe2O3", "->")
//	// out == "4Fe + 3O2 -> 2Fe2O3"
//
// Failures are sentinel errors matched with errors.Is: ErrInvalidCharacter
// and ErrMalformedReaction for bad input, ErrNoSolution and
// ErrUnderdeterminedSystem for reactions without a unique balance.
//
//	go install github.com/katalvlaran/chembalance/cmd/chembalance@latest
package chembalance
