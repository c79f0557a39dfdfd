// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/alexdata/braid"
)

// word is the mutable buffer shared by the constructors of one build.
type word struct {
	strands int
	ops     []int
	limit   int
}

// push appends generators, rejecting those outside the braid group and
// growth past the length limit.
func (w *word) push(method string, ops ...int) error {
	if len(w.ops)+len(ops) > w.limit {
		return builderErrorf(method, "length %d exceeds %d", ErrBadSize, len(w.ops)+len(ops), w.limit)
	}
	for _, op := range ops {
		if op == 0 || op >= w.strands || -op >= w.strands {
			return builderErrorf(method, "generator %d on %d strands", ErrConstructFailed, op, w.strands)
		}
	}
	w.ops = append(w.ops, ops...)

	return nil
}

// Constructor appends generators to the word under construction.
// Constructors validate their own parameters and return wrapped sentinels.
type Constructor func(w *word, cfg builderConfig) error

// BuildWord resolves opts and applies cons in order to an empty word on n
// strands. The first constructor error aborts the build.
//
// Errors:
//   - ErrTooFewStrands   if n < 2.
//   - ErrConstructFailed for a nil constructor or an out-of-range generator.
//   - any constructor sentinel, wrapped as "BuildWord: %w".
//
// Complexity: Σ cost of the constructors; O(len(word)) for WithMirror.
func BuildWord(n int, opts []BuilderOption, cons ...Constructor) ([]int, error) {
	if n < MinStrands {
		return nil, builderErrorf(methodBuild, "n=%d", ErrTooFewStrands, n)
	}
	cfg := newBuilderConfig(opts...)
	w := &word{strands: n, ops: []int{}, limit: cfg.maxLength}
	if err := apply(w, cfg, cons); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if cfg.mirror {
		for i := range w.ops {
			w.ops[i] = -w.ops[i]
		}
	}

	return w.ops, nil
}

// apply runs cons in order against w.
func apply(w *word, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(w, cfg); err != nil {
			return err
		}
	}

	return nil
}

// BuildSpec builds a word and wraps it in a braid.Spec.
func BuildSpec(n int, opts []BuilderOption, cons ...Constructor) (*braid.Spec, error) {
	ops, err := BuildWord(n, opts, cons...)
	if err != nil {
		return nil, err
	}

	return braid.New(n, ops...)
}

// BuildKernel builds a word and wraps it in a braid.Kernel with k caps.
func BuildKernel(n, k int, opts []BuilderOption, cons ...Constructor) (*braid.Kernel, error) {
	ops, err := BuildWord(n, opts, cons...)
	if err != nil {
		return nil, err
	}

	return braid.NewKernel(n, k, ops...)
}
