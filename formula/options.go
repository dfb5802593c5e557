// SPDX-License-Identifier: MIT
// Package: formula
//
// options.go — functional configuration for parsing.
//
// Deterministic defaults:
//   • divider       = DefaultDivider ("->")
//   • knownElements = false (any Xx.. symbol accepted)
//
// Option constructors panic only on nonsensical values (programmer error).

package formula

import (
	"strings"
	"unicode"
)

// DefaultDivider separates reactants from products.
const DefaultDivider = "->"

// componentSeparator joins components within one side.
const componentSeparator = "+"

const (
	panicDividerEmpty   = "formula: WithDivider: divider must not be empty"
	panicDividerInvalid = "formula: WithDivider: divider must not contain letters, digits, whitespace or '+'"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	divider       string // DefaultDivider
	knownElements bool   // restrict symbols to the periodic table
}

// WithDivider sets the side divider (e.g. "=", "=>", "→").
// Panics if d is empty or contains runes that could be part of a formula.
func WithDivider(d string) Option {
	if d == "" {
		panic(panicDividerEmpty)
	}
	if !ValidDivider(d) {
		panic(panicDividerInvalid)
	}

	return func(o *Options) { o.divider = d }
}

// WithKnownElements restricts symbols to the periodic table (ErrUnknownElement otherwise).
func WithKnownElements() Option {
	return func(o *Options) { o.knownElements = true }
}

// ValidDivider reports whether d can separate reaction sides without being
// confused with formula text.
func ValidDivider(d string) bool {
	if d == "" || strings.Contains(d, componentSeparator) {
		return false
	}
	for _, r := range d {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// NewOptions resolves opts over the defaults. Later options override earlier ones.
func NewOptions(opts ...Option) Options {
	o := Options{divider: DefaultDivider}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
