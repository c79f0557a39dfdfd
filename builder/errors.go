// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewStrands indicates n < 2 for a word builder.
var ErrTooFewStrands = errors.New("builder: too few strands")

// ErrBadSize indicates a non-positive count (rows, times, length, exponent)
// or a word that would exceed the configured maximum length.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that RandomWord ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a generator the braid
// group cannot hold.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a formatted detail,
// keeping err available to errors.Is.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
