// SPDX-License-Identifier: MIT

package builder

// Generators appends the literal generators ops.
func Generators(ops ...int) Constructor {
	return func(w *word, _ builderConfig) error {
		return w.push(methodGenerators, ops...)
	}
}

// HalfTwist appends the Garside element
// Δ = (σ1 σ2 … σ_{n-1})(σ1 … σ_{n-2}) … (σ1).
// Complexity: O(n²) generators.
func HalfTwist() Constructor {
	return func(w *word, _ builderConfig) error {
		return w.push(methodHalfTwist, halfTwist(w.strands)...)
	}
}

// FullTwist appends Δ².
func FullTwist() Constructor {
	return func(w *word, _ builderConfig) error {
		d := halfTwist(w.strands)
		return w.push(methodFullTwist, append(d, d...)...)
	}
}

func halfTwist(n int) []int {
	out := make([]int, 0, n*(n-1)/2)
	for top := n - 1; top >= 1; top-- {
		for i := 1; i <= top; i++ {
			out = append(out, i)
		}
	}

	return out
}

// Torus appends (σ1 σ2 … σ_{n-1})^m; for m < 0 it appends
// (σ_{n-1}^-1 … σ1^-1)^|m|. m == 0 is ErrBadSize.
// On n strands the closure is the (n, m) torus link.
func Torus(m int) Constructor {
	return func(w *word, _ builderConfig) error {
		if m == 0 {
			return builderErrorf(methodTorus, "m=0", ErrBadSize)
		}
		times, cycle := m, make([]int, 0, w.strands-1)
		if m > 0 {
			for i := 1; i < w.strands; i++ {
				cycle = append(cycle, i)
			}
		} else {
			times = -m
			for i := w.strands - 1; i >= 1; i-- {
				cycle = append(cycle, -i)
			}
		}
		for r := 0; r < times; r++ {
			if err := w.push(methodTorus, cycle...); err != nil {
				return err
			}
		}

		return nil
	}
}

// Plait appends rows of σ1 σ2^-1 σ3 σ4^-1 …, alternating signs along the
// row and starting every other row with an inverse, like a plain weave.
// rows < 1 is ErrBadSize.
func Plait(rows int) Constructor {
	return func(w *word, _ builderConfig) error {
		if rows < 1 {
			return builderErrorf(methodPlait, "rows=%d", ErrBadSize, rows)
		}
		row := make([]int, w.strands-1)
		for r := 0; r < rows; r++ {
			for i := 1; i < w.strands; i++ {
				if (i+r)%2 == 1 {
					row[i-1] = i
				} else {
					row[i-1] = -i
				}
			}
			if err := w.push(methodPlait, row...); err != nil {
				return err
			}
		}

		return nil
	}
}

// Repeat runs cons times times, in order. times < 1 is ErrBadSize.
func Repeat(times int, cons ...Constructor) Constructor {
	return func(w *word, cfg builderConfig) error {
		if times < 1 {
			return builderErrorf(methodRepeat, "times=%d", ErrBadSize, times)
		}
		for t := 0; t < times; t++ {
			if err := apply(w, cfg, cons); err != nil {
				return builderErrorf(methodRepeat, "pass %d", err, t)
			}
		}

		return nil
	}
}

// RandomWord appends length generators drawn uniformly from
// {±1, …, ±(n-1)} using the configured RNG.
//
// Errors:
//   - ErrBadSize        if length < 1.
//   - ErrNeedRandSource if no WithSeed/WithRand was given.
func RandomWord(length int) Constructor {
	return func(w *word, cfg builderConfig) error {
		if length < 1 {
			return builderErrorf(methodRandom, "length=%d", ErrBadSize, length)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandom, "no rng", ErrNeedRandSource)
		}
		ops := make([]int, length)
		for i := range ops {
			op := 1 + cfg.rng.Intn(w.strands-1)
			if cfg.rng.Intn(2) == 1 {
				op = -op
			}
			ops[i] = op
		}

		return w.push(methodRandom, ops...)
	}
}
