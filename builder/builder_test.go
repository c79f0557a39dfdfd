// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/builder"
)

func TestDeterministicConstructors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		cons []builder.Constructor
		want []int
	}{
		{"generators", 4, []builder.Constructor{builder.Generators(1, -3, 2)}, []int{1, -3, 2}},
		{"half twist", 4, []builder.Constructor{builder.HalfTwist()}, []int{1, 2, 3, 1, 2, 1}},
		{"full twist", 3, []builder.Constructor{builder.FullTwist()}, []int{1, 2, 1, 1, 2, 1}},
		{"torus", 3, []builder.Constructor{builder.Torus(2)}, []int{1, 2, 1, 2}},
		{"torus inverse", 3, []builder.Constructor{builder.Torus(-1)}, []int{-2, -1}},
		{"plait", 4, []builder.Constructor{builder.Plait(2)}, []int{1, -2, 3, -1, 2, -3}},
		{"repeat", 3, []builder.Constructor{builder.Repeat(2, builder.Generators(1), builder.Generators(-2))}, []int{1, -2, 1, -2}},
		{"composed", 3, []builder.Constructor{builder.Generators(2), builder.Torus(1)}, []int{2, 1, 2}},
		{"empty", 3, nil, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := builder.BuildWord(tc.n, nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMirror(t *testing.T) {
	got, err := builder.BuildWord(3, []builder.BuilderOption{builder.WithMirror()}, builder.Generators(1, -2))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2}, got)
}

func TestRandomWordDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.BuildWord(5, opts, builder.RandomWord(50))
	require.NoError(t, err)
	b, err := builder.BuildWord(5, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomWord(50))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.Len(t, a, 50)
	for _, op := range a {
		assert.NotZero(t, op)
		assert.Less(t, braid.Generator(op).Index(), 5)
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := builder.BuildWord(1, nil)
	require.ErrorIs(t, err, builder.ErrTooFewStrands)

	_, err = builder.BuildWord(3, nil, builder.Generators(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildWord(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildWord(3, nil, builder.RandomWord(4))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildWord(3, nil, builder.Torus(0))
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildWord(3, nil, builder.Plait(0))
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildWord(3, nil, builder.Repeat(0, builder.Generators(1)))
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildWord(3, []builder.BuilderOption{builder.WithMaxLength(3)}, builder.Torus(2))
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildWord(3, nil, builder.Repeat(2, builder.Generators(-3)))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxLength(0) })
}

func TestBuildKernel(t *testing.T) {
	k, err := builder.BuildKernel(5, 1, nil, builder.Generators(3, 2, 2, -4, -1, -1, -2, -3, -4))
	require.NoError(t, err)
	assert.Equal(t, 1, k.Caps())
	assert.Equal(t, 9, k.Len())

	_, err = builder.BuildKernel(4, 3, nil, builder.HalfTwist())
	require.ErrorIs(t, err, braid.ErrInvalidCapCount)

	s, err := builder.BuildSpec(4, nil, builder.Plait(1))
	require.NoError(t, err)
	assert.Equal(t, "σ1 σ2^-1 σ3", s.Word().String())
}
