// SPDX-License-Identifier: MIT

// Package alexander computes the Alexander polynomial and the Alexander data
// (U, V and the normalised coefficient table) of a braid kernel.
//
// Pipeline (Compute):
//
//	Kernel ─Track/Resolve─▶ relabelled crossings ─ReducedBurau─▶ (n-1)×(n-1)
//	       ─Polynomial─▶ det ─Data─▶ U, V, table
//
// Variables:
//   - y          the strand of the class containing label 1 (braid.YStrand).
//   - t<label>   every other class, named by its representative label.
//   - x          the diagonal shift of the open block.
//   - s<label>   square roots used by Data: t<label> = s<label>^2.
//
// All arithmetic is exact (poly.Poly over big.Rat). Nothing in this package
// uses floating point.
//
// The coefficient extraction in Data reads only terms whose x and y
// exponents are both in 1..size; it has been checked on the braids in the
// tests and is not claimed to be general for arbitrary kernels.
package alexander
