// SPDX-License-Identifier: MIT

package alexander

import "errors"

var (
	// ErrDegenerateReduction indicates that the row/column selection of the
	// x-shifted Burau matrix is not square (e.g. a kernel with no open strands).
	ErrDegenerateReduction = errors.New("alexander: reduction is not square")

	// ErrLabelCount indicates a relabelled crossing sequence whose length
	// differs from the braid word.
	ErrLabelCount = errors.New("alexander: label count does not match word length")
)
