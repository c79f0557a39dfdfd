// SPDX-License-Identifier: MIT

// Package poly implements exact Laurent polynomials over the rationals in a
// finite set of named indeterminates.
//
// The package offers:
//
//   - Var / Power / Monomial: canonical products of indeterminates with signed
//     integer exponents (x^2*t2^-1). Zero exponents are dropped, factors are
//     kept in a fixed variable order (x, y, then by prefix and numeric suffix).
//   - Poly: an immutable sum of rational-coefficient terms. Every operation
//     returns a fresh value; receivers and arguments are never mutated.
//   - Monomial substitution (t2 -> s2^2), term selection, evaluation at
//     rational points and a deterministic String form.
//
// Coefficients are *big.Rat, so there is no rounding anywhere. Negative
// powers of a polynomial are only defined for single-term polynomials; any
// other inversion returns ErrNotInvertible.
//
// Complexity:
//
//   - Add/Sub: O(|p|+|q|) map operations.
//   - Mul:     O(|p|·|q|) monomial merges.
//   - String:  O(|p| log |p|) for the deterministic term sort.
package poly
