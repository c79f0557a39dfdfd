// SPDX-License-Identifier: MIT

package braid

import "errors"

var (
	// ErrTooFewStrands is returned when a braid is requested on fewer than two strands.
	ErrTooFewStrands = errors.New("braid: need at least 2 strands")

	// ErrInvalidGenerator indicates a generator outside the braid group:
	// op == 0 or |op| >= n.
	ErrInvalidGenerator = errors.New("braid: generator exceeds the braid group")

	// ErrInvalidCapCount indicates k < 0 or 2k > n.
	ErrInvalidCapCount = errors.New("braid: cap count exceeds half the strands")

	// ErrDegenerateClosure is returned when a closure walk fails to close
	// within its step bound.
	ErrDegenerateClosure = errors.New("braid: closure walk did not terminate")

	// ErrLabelMismatch indicates label data that cannot come from Track:
	// a top row that is not a permutation of 1..n, or labels out of range.
	ErrLabelMismatch = errors.New("braid: inconsistent strand labels")

	// ErrInvalidWord is returned by ParseWord for unreadable tokens.
	ErrInvalidWord = errors.New("braid: invalid braid word")
)
