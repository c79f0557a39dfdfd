// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for RandomWord; nil means no randomness.
	rng *rand.Rand
	// Negate every generator once construction finishes.
	mirror bool
	// Upper bound on the finished word length.
	maxLength int
}

const (
	// DefaultMaxLength bounds a built word unless WithMaxLength overrides it.
	DefaultMaxLength = 1 << 16

	// MinStrands is the smallest braid group a word can live in.
	MinStrands = 2
)

// Method tags for error context.
const (
	methodBuild      = "BuildWord"
	methodGenerators = "Generators"
	methodHalfTwist  = "HalfTwist"
	methodFullTwist  = "FullTwist"
	methodTorus      = "Torus"
	methodPlait      = "Plait"
	methodRepeat     = "Repeat"
	methodRandom     = "RandomWord"
)

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
