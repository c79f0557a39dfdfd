// SPDX-License-Identifier: MIT

// Package matrix offers dense matrices whose entries are exact Laurent
// polynomials (poly.Poly), and the few kernels the Burau pipeline needs.
//
// The matrix package provides:
//
//   - Dense: row-major storage with safe accessors (At/Set return errors,
//     never panic) and deterministic iteration (Do/Apply).
//   - Identity, Clone, Induced (copying row/column selection, used to pick
//     the minor of the Alexander polynomial), DeleteRow and DeleteCol (used
//     to drop the last row and column of the Burau matrix).
//   - Mul: C = A × B over the polynomial ring.
//   - Det: division-free cofactor expansion memoised over column subsets.
//
// All arithmetic is exact; there is no numeric tolerance anywhere. Matrices
// handed to Mul/Det are never mutated.
//
// Complexity:
//
//   - At/Set: O(1); Clone/Induced: O(r·c); Mul: O(n³) polynomial products;
//     Det: O(2^n · n) polynomial products with O(2^n) memo entries.
package matrix
