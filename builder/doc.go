// SPDX-License-Identifier: MIT

// Package builder assembles braid words from reusable, deterministic
// constructors, in the same "functional options + constructor list" style
// used throughout alexdata.
//
// The package offers:
//
//   - Orchestrators:
//     – BuildWord(n, opts, cons...)      -> []int
//     – BuildSpec(n, opts, cons...)      -> *braid.Spec
//     – BuildKernel(n, k, opts, cons...) -> *braid.Kernel
//   - Constructors (Constructor):
//     – Generators(ops...)   literal generators, validated against n.
//     – HalfTwist()          Garside element Δ.
//     – FullTwist()          Δ², central in the braid group.
//     – Torus(m)             (σ1…σ_{n-1})^m, negative m gives the inverse.
//     – Plait(rows)          alternating σ1 σ2^-1 σ3 … rows, the plain weave.
//     – Repeat(times, cons…) runs a constructor block several times.
//     – RandomWord(length)   uniform random generators; needs WithSeed/WithRand.
//   - Options (BuilderOption):
//     – WithSeed, WithRand   RNG for RandomWord.
//     – WithMirror           negate every generator of the finished word.
//     – WithMaxLength        cap on the finished word length.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ same word.
//   - Option constructors panic on meaningless values; constructors and
//     orchestrators never panic and return wrapped sentinels.
package builder
