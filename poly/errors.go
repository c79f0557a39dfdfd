// SPDX-License-Identifier: MIT

package poly

import "errors"

var (
	// ErrNotInvertible is returned when a negative power or inverse is
	// requested for a polynomial with more than one term.
	ErrNotInvertible = errors.New("poly: polynomial is not a unit")

	// ErrDivisionByZero is returned when the zero polynomial is inverted or a
	// variable bound to zero carries a negative exponent during evaluation.
	ErrDivisionByZero = errors.New("poly: division by zero")

	// ErrUnboundVar indicates that Evaluate met a variable with no value.
	ErrUnboundVar = errors.New("poly: unbound variable")
)
