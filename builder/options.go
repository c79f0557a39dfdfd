// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before the
// constructors run.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for RandomWord. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, so RandomWord output is reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMirror negates every generator of the finished word (the mirror braid).
func WithMirror() BuilderOption {
	return func(c *builderConfig) { c.mirror = true }
}

// WithMaxLength caps the finished word length. Panics if limit < 1.
func WithMaxLength(limit int) BuilderOption {
	if limit < 1 {
		panic("builder: WithMaxLength(limit<1)")
	}

	return func(c *builderConfig) { c.maxLength = limit }
}
