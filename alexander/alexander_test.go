// SPDX-License-Identifier: MIT

package alexander_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/alexdata/alexander"
	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/matrix"
	"github.com/katalvlaran/alexdata/poly"
)

var sample = []int{3, 2, 2, -4, -1, -1, -2, -3, -4}

var (
	vx  = poly.X
	vy  = poly.Y
	vt2 = poly.Var("t2")
	vs2 = poly.Var("s2")
)

func pw(v poly.Var, e int) poly.Power { return poly.Power{Var: v, Exp: e} }

func term(c int64, ps ...poly.Power) *poly.Poly {
	return poly.FromTerm(big.NewRat(c, 1), poly.NewMonomial(ps...))
}

func mustKernel(t *testing.T, n, k int, ops ...int) *braid.Kernel {
	t.Helper()
	kr, err := braid.NewKernel(n, k, ops...)
	require.NoError(t, err)

	return kr
}

func at(t *testing.T, m *matrix.Dense, i, j int) *poly.Poly {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestLabelVar(t *testing.T) {
	assert.Equal(t, poly.Y, alexander.LabelVar(braid.YStrand))
	assert.Equal(t, poly.Var("t7"), alexander.LabelVar(7))
	assert.Equal(t, poly.Var("s3"), alexander.SquareRootVar(3))
}

func TestBurauSingleGenerator(t *testing.T) {
	s, err := braid.New(3, 1)
	require.NoError(t, err)
	full, err := alexander.Burau(s, []int{1})
	require.NoError(t, err)

	want := [][]*poly.Poly{
		{term(-1, pw(vy, -1)), term(1, pw(vy, -1)), poly.Zero()},
		{poly.Zero(), poly.One(), poly.Zero()},
		{poly.Zero(), poly.Zero(), poly.One()},
	}
	wm, err := matrix.FromRows(want)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(wm, full), "got:\n%s", full)

	red, err := alexander.ReducedBurau(s, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "[-y^-1, y^-1]\n[0, 1]\n", red.String())

	trimmed, err := full.DeleteRow(2)
	require.NoError(t, err)
	trimmed, err = trimmed.DeleteCol(2)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(trimmed, red))
}

func TestBurauUndercrossing(t *testing.T) {
	s, err := braid.New(3, -2)
	require.NoError(t, err)
	full, err := alexander.Burau(s, []int{3})
	require.NoError(t, err)
	assert.True(t, at(t, full, 1, 0).Equal(term(1, pw("t3", 1))))
	assert.True(t, at(t, full, 1, 1).Equal(term(-1, pw("t3", 1))))
	assert.True(t, at(t, full, 1, 2).Equal(poly.One()))
	assert.True(t, at(t, full, 0, 0).Equal(poly.One()))
}

func TestBurauLabelCount(t *testing.T) {
	s, err := braid.New(3, 1, 2)
	require.NoError(t, err)
	_, err = alexander.Burau(s, []int{1})
	require.ErrorIs(t, err, alexander.ErrLabelCount)
}

func TestReducedBurauSample(t *testing.T) {
	k := mustKernel(t, 5, 1, sample...)
	_, cl, err := braid.Analyze(k)
	require.NoError(t, err)
	red, err := alexander.ReducedBurau(k.Braid(), cl.Labels)
	require.NoError(t, err)

	rr, cc := red.Shape()
	assert.Equal(t, 4, rr)
	assert.Equal(t, 4, cc)

	t2 := term(1, pw(vt2, 1))
	t2sq := term(1, pw(vt2, 2))
	t2y := term(1, pw(vt2, 1), pw(vy, 1))

	assert.True(t, at(t, red, 0, 0).Equal(t2))
	assert.True(t, at(t, red, 0, 1).IsZero())
	assert.True(t, at(t, red, 0, 3).Equal(t2y.Sub(t2)))
	assert.True(t, at(t, red, 3, 0).IsZero())
	assert.True(t, at(t, red, 3, 1).Equal(t2sq))
	assert.True(t, at(t, red, 3, 2).Equal(t2sq.Neg()))
	assert.True(t, at(t, red, 3, 3).IsZero())
	assert.True(t, at(t, red, 1, 1).Equal(poly.One().Sub(term(1, pw(vt2, -1)))))
}

func TestReduction(t *testing.T) {
	cases := []struct {
		name       string
		n, k       int
		rows, cols []int
	}{
		{"sample", 5, 1, []int{0, 1, 2}, []int{0, 1, 3}},
		{"one open", 3, 1, []int{0}, []int{1}},
		{"two caps", 7, 2, []int{0, 1, 2, 4}, []int{0, 1, 3, 5}},
		{"no caps", 4, 0, []int{0, 1, 2}, []int{0, 1, 2}},
		{"no open", 4, 2, []int{1}, []int{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, cols := alexander.Reduction(tc.n, tc.k)
			if diff := cmp.Diff(tc.rows, rows); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.cols, cols); diff != "" {
				t.Errorf("cols (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPolynomialClosedForms(t *testing.T) {
	cases := []struct {
		name string
		n, k int
		word []int
		want string
	}{
		{"positive generator", 3, 1, []int{1}, "y^-1"},
		{"negative generator", 3, 1, []int{-1}, "1"},
		{"two generators", 3, 1, []int{1, 2}, "-y^-2"},
		{"two components", 4, 1, []int{1, -2, 3, -1}, "x*y^-1 - y^-1"},
		{"open closure", 3, 0, []int{1, -2}, "x^2 + x*y - x + x*y^-1 + 1"},
		{"two strands", 2, 0, []int{1}, "-x - y^-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := alexander.Compute(mustKernel(t, tc.n, tc.k, tc.word...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Polynomial.String())
		})
	}
}

func TestPolynomialSample(t *testing.T) {
	res, err := alexander.Compute(mustKernel(t, 5, 1, sample...))
	require.NoError(t, err)

	want := poly.Sum(
		term(1, pw(vt2, -1), pw(vx, 1)),
		term(-1, pw(vt2, 1)),
		term(1, pw(vt2, 1), pw(vx, 1)),
		term(-2, pw(vt2, 1), pw(vx, 1), pw(vy, 1)),
		term(-1, pw(vt2, 1), pw(vx, 2)),
		term(1, pw(vt2, 1), pw(vx, 2), pw(vy, 1)),
		term(1, pw(vt2, 1), pw(vy, 1)),
		term(1, pw(vt2, 2)),
		term(-1, pw(vt2, 2), pw(vx, 1)),
		term(1, pw(vt2, 2), pw(vx, 1), pw(vy, 1)),
		term(-2, pw(vx, 1)),
		term(2, pw(vx, 1), pw(vy, 1)),
		term(1, pw(vx, 2)),
		term(-1, pw(vx, 2), pw(vy, 1)),
		term(-1, pw(vy, 1)),
	)
	assert.True(t, want.Equal(res.Polynomial), "got %s", res.Polynomial)
	assert.Equal(t, 15, res.Polynomial.Len())
}

func TestPolynomialDegenerate(t *testing.T) {
	_, err := alexander.Compute(mustKernel(t, 4, 2, 1, 2, 3))
	require.ErrorIs(t, err, alexander.ErrDegenerateReduction)

	k := mustKernel(t, 4, 1, 1)
	bad, err := matrix.Identity(2)
	require.NoError(t, err)
	_, err = alexander.Polynomial(k, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = alexander.Polynomial(k, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCrossingStrands(t *testing.T) {
	k := mustKernel(t, 5, 1, sample...)
	_, cl, err := braid.Analyze(k)
	require.NoError(t, err)
	got, err := alexander.CrossingStrands(k.Word(), cl.Labels)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)

	_, err = alexander.CrossingStrands(k.Word(), cl.Labels[:3])
	require.ErrorIs(t, err, alexander.ErrLabelCount)
}

func TestDataSample(t *testing.T) {
	res, err := alexander.Compute(mustKernel(t, 5, 1, sample...))
	require.NoError(t, err)
	d := res.Data

	assert.Equal(t, "y", d.U.String())
	assert.Equal(t, "x*s2", d.V.String())

	rr, cc := d.Table.Shape()
	assert.Equal(t, 3, rr)
	assert.Equal(t, 3, cc)

	want00 := poly.Sum(term(1, pw(vs2, 3)), term(-2, pw(vs2, 1)), term(2, pw(vs2, -1)))
	want01 := poly.One().Sub(term(1, pw(vs2, -2)))
	assert.True(t, at(t, d.Table, 0, 0).Equal(want00), "got %s", at(t, d.Table, 0, 0))
	assert.True(t, at(t, d.Table, 0, 1).Equal(want01), "got %s", at(t, d.Table, 0, 1))
	assert.Equal(t, "s2^3 - 2*s2 + 2*s2^-1", at(t, d.Table, 0, 0).String())
	assert.Equal(t, "1 - s2^-2", at(t, d.Table, 0, 1).String())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == 0 && j < 2 {
				continue
			}
			assert.True(t, at(t, d.Table, i, j).IsZero(), "entry [%d][%d] = %s", i, j, at(t, d.Table, i, j))
		}
	}
}

func TestDataTwoComponents(t *testing.T) {
	res, err := alexander.Compute(mustKernel(t, 4, 1, 1, -2, 3, -1))
	require.NoError(t, err)
	assert.Equal(t, "y*s2", res.Data.U.String())
	assert.Equal(t, "x", res.Data.V.String())
	res.Data.Table.Do(func(i, j int, v *poly.Poly) bool {
		assert.True(t, v.IsZero(), "entry [%d][%d]", i, j)
		return true
	})
}

func TestDataNamesClassesByRepresentative(t *testing.T) {
	vs3, vs4, vt3 := poly.Var("s3"), poly.Var("s4"), poly.Var("t3")
	cases := []struct {
		name    string
		n, k    int
		word    []int
		reps    []int
		det     *poly.Poly
		u, v    string
		entries map[[2]int]*poly.Poly
	}{
		{
			name: "open", n: 4, k: 0, word: []int{-2, -1, -1, 2, -1},
			reps: []int{1, 3, 4},
			det: poly.Sum(term(1, pw(vt3, 1), pw(vx, 1), pw(vy, 2)), term(-1, pw(vt3, 1), pw(vy, 2)),
				term(1, pw(vx, 2)), term(-1, pw(vx, 3))),
			u: "y*s3*s4", v: "x*s3",
			entries: map[[2]int]*poly.Poly{{1, 0}: term(1, pw(vs3, -1), pw(vs4, -2))},
		},
		{
			name: "capped", n: 5, k: 1, word: []int{-2, -1, -1, -2, 3, 1},
			reps: []int{1, 3},
			det: poly.Sum(term(1, pw(vt3, -1), pw(vx, 2)), term(-1, pw(vt3, 1), pw(vy, 1)),
				term(1, pw(vx, 1), pw(vy, -1)), term(-1, pw(vx, 1), pw(vy, 2))),
			u: "y*s3", v: "x*s3",
			entries: map[[2]int]*poly.Poly{{1, 0}: term(-1, pw(vs3, -3))},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := alexander.Compute(mustKernel(t, tc.n, tc.k, tc.word...))
			require.NoError(t, err)
			assert.Equal(t, tc.reps, res.Closure.Representatives())
			assert.True(t, res.Polynomial.Equal(tc.det), "got %s", res.Polynomial)

			d := res.Data
			assert.Equal(t, tc.u, d.U.String())
			assert.Equal(t, tc.v, d.V.String())
			rr, cc := d.Table.Shape()
			assert.Equal(t, tc.n-tc.k-1, rr)
			assert.Equal(t, rr, cc)
			d.Table.Do(func(j, i int, got *poly.Poly) bool {
				want, ok := tc.entries[[2]int{j, i}]
				if !ok {
					want = poly.Zero()
				}
				assert.True(t, got.Equal(want), "entry [%d][%d] = %s", j, i, got)
				for _, v := range got.Vars() {
					assert.NotEqual(t, poly.Var("s2"), v)
				}
				return true
			})
		})
	}
}

func TestDataLabelCount(t *testing.T) {
	k := mustKernel(t, 3, 1, 1)
	_, err := alexander.Data(k, &braid.Closure{Labels: nil}, poly.One())
	require.ErrorIs(t, err, alexander.ErrLabelCount)
}

func TestComputeIsDeterministic(t *testing.T) {
	k := mustKernel(t, 5, 1, sample...)
	a, err := alexander.Compute(k)
	require.NoError(t, err)
	b, err := alexander.Compute(k)
	require.NoError(t, err)
	assert.True(t, a.Polynomial.Equal(b.Polynomial))
	assert.True(t, matrix.Equal(a.Data.Table, b.Data.Table))
	assert.Equal(t, a.Trace, b.Trace)
}

func TestComputeLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := alexander.Compute(mustKernel(t, 5, 1, sample...), alexander.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("polynomial computed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(15), entries[0].ContextMap()["terms"])
	assert.Equal(t, int64(5), entries[0].ContextMap()["strands"])
	assert.Equal(t, 4, logs.Len())
}

func TestWithLoggerNilPanics(t *testing.T) {
	assert.Panics(t, func() { alexander.WithLogger(nil) })
}
