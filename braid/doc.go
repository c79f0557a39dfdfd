// SPDX-License-Identifier: MIT

// Package braid models braid words on n strands and braid kernels (braids
// closed by loops and caps) and tracks which physical strands they identify.
//
// Key features:
//   - New(n, ops...) / NewKernel(n, k, ops...): validated, immutable specs.
//   - Track(s): replays the word from the bottom of the braid and reports
//     bottom/top labels plus the label passing under at every crossing.
//   - Resolve(n, k, top, under): walks the kernel closure (loops for the
//     lower n-2k positions, adjacent cap pairs above them) and groups
//     positions into oriented equivalence classes, then rewrites
//     undercrossing labels to class representatives.
//   - Strategy: Open (plain braid, no closure) and Capped (kernel closure),
//     selected by the spec itself; Analyze(s) runs Track + Resolve.
//
// Labels are 1-based strand identities. Label YStrand (1) is reserved for
// the distinguished base strand that becomes the variable y downstream.
//
// Complexity:
//
//   - Track:   O(len(word) + n).
//   - Resolve: O(n) for the walk, O(len(word)) for relabelling.
//
// Errors:
//
//   - ErrTooFewStrands      if n < 2.
//   - ErrInvalidGenerator   if a generator is 0 or |op| >= n.
//   - ErrInvalidCapCount    if k < 0 or k > n/2.
//   - ErrDegenerateClosure  if a closure walk exceeds its step bound.
//   - ErrLabelMismatch      if Resolve receives inconsistent label data.
//   - ErrInvalidWord        if ParseWord cannot read its input.
package braid
