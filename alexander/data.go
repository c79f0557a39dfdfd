// SPDX-License-Identifier: MIT

package alexander

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/matrix"
	"github.com/katalvlaran/alexdata/poly"
)

// Invariant is the Alexander data of a kernel.
//
// Table is square of size r+k-1; Table[j][i] holds the terms of the
// substituted polynomial with monomial x^(i+1)·y^(j+1)·(s-part), divided by
// U^(j+1)·V^(i+1). Entries without matching terms are zero.
type Invariant struct {
	U     *poly.Poly
	V     *poly.Poly
	Table *matrix.Dense
}

// CrossingStrands returns the relabelled strands that cross the y strand:
// for every generator σ_1^-1 immediately preceded by another σ_1^-1, the
// label at that position. Order follows the word; repeats are kept.
func CrossingStrands(word braid.Word, labels []int) ([]int, error) {
	if len(labels) != len(word) {
		return nil, fmt.Errorf("CrossingStrands: %d labels for %d generators: %w", len(labels), len(word), ErrLabelCount)
	}
	var out []int
	for j := 1; j < len(word); j++ {
		if word[j] == -1 && word[j-1] == -1 {
			out = append(out, labels[j])
		}
	}

	return out, nil
}

// exponents returns the orientation sums of a class: a over the open
// positions (strand <= r), b over the strands in crossing.
func exponents(c braid.Class, r int, crossing map[int]bool) (a, b int) {
	for _, m := range c {
		if m.Strand <= r {
			a += m.Sign
		}
		if crossing[m.Strand] {
			b += m.Sign
		}
	}

	return a, b
}

// Data computes U = y·Π s_c^a_c, V = x·Π s_c^b_c over the classes c not
// containing braid.YStrand, substitutes t_c = s_c^2 in det and fills the
// normalised coefficient table.
//
// cl must come from resolving k: its Labels drive the crossing scan and its
// Classes the exponents. det is the output of Polynomial.
//
// Complexity: O(size²·terms(det)).
func Data(k *braid.Kernel, cl *braid.Closure, det *poly.Poly) (*Invariant, error) {
	word := k.Word()
	crossing, err := CrossingStrands(word, cl.Labels)
	if err != nil {
		return nil, fmt.Errorf("Data: %w", err)
	}
	crossSet := make(map[int]bool, len(crossing))
	for _, s := range crossing {
		crossSet[s] = true
	}

	r := k.Open()
	uPowers := []poly.Power{{Var: poly.Y, Exp: 1}}
	vPowers := []poly.Power{{Var: poly.X, Exp: 1}}
	subst := det
	for _, c := range cl.Classes {
		if c.Contains(braid.YStrand) {
			continue
		}
		rep := c.Representative()
		s := SquareRootVar(rep)
		a, b := exponents(c, r, crossSet)
		uPowers = append(uPowers, poly.Power{Var: s, Exp: a})
		vPowers = append(vPowers, poly.Power{Var: s, Exp: b})
		subst = subst.Substitute(LabelVar(rep), poly.NewMonomial(poly.Power{Var: s, Exp: 2}))
	}
	u := poly.NewMonomial(uPowers...)
	v := poly.NewMonomial(vPowers...)

	size := r + k.Caps() - 1
	if size < 1 {
		return nil, fmt.Errorf("Data: table size %d: %w", size, ErrDegenerateReduction)
	}
	table, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("Data: %w", err)
	}
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			xe, ye := i+1, j+1
			part := subst.Select(func(m poly.Monomial) bool {
				return m.Exp(poly.X) == xe && m.Exp(poly.Y) == ye
			})
			if part.IsZero() {
				continue
			}
			norm := part.DivMonomial(u.Pow(ye).Mul(v.Pow(xe)))
			if err = table.Set(j, i, norm); err != nil {
				return nil, fmt.Errorf("Data: %w", err)
			}
		}
	}

	one := big.NewRat(1, 1)

	return &Invariant{
		U:     poly.FromTerm(one, u),
		V:     poly.FromTerm(one, v),
		Table: table,
	}, nil
}
