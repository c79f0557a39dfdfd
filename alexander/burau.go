// SPDX-License-Identifier: MIT

package alexander

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/matrix"
	"github.com/katalvlaran/alexdata/poly"
)

// LabelVar returns the indeterminate of a relabelled crossing:
// y for braid.YStrand, t<label> otherwise.
func LabelVar(label int) poly.Var {
	if label == braid.YStrand {
		return poly.Y
	}

	return poly.Indexed("t", label)
}

// SquareRootVar returns s<label>, the variable with t<label> = s<label>^2.
func SquareRootVar(label int) poly.Var { return poly.Indexed("s", label) }

// elementary builds the coloured Burau matrix of one generator.
//
// For σ_i^-1 (row = i-1) the row reads [.., v, -v, 1, ..];
// for σ_i it reads [.., 1, -v^-1, v^-1, ..]. The sub-diagonal entry is
// omitted on the first row.
func elementary(n int, g braid.Generator, label int) (*matrix.Dense, error) {
	e, err := matrix.Identity(n)
	if err != nil {
		return nil, err
	}
	row := g.Index() - 1
	v := LabelVar(label)
	sym := poly.Symbol(v)
	inv := poly.FromTerm(big.NewRat(1, 1), poly.NewMonomial(poly.Power{Var: v, Exp: -1}))

	var left, diag, right *poly.Poly
	if g.Under() {
		left, diag, right = sym, sym.Neg(), poly.One()
	} else {
		left, diag, right = poly.One(), inv.Neg(), inv
	}
	if row != 0 {
		if err = e.Set(row, row-1, left); err != nil {
			return nil, err
		}
	}
	if err = e.Set(row, row, diag); err != nil {
		return nil, err
	}
	if err = e.Set(row, row+1, right); err != nil {
		return nil, err
	}

	return e, nil
}

// Burau multiplies the elementary matrices of s in word order (the running
// product is multiplied on the right) and returns the n×n result.
//
// labels must hold one relabelled crossing label per generator, else
// ErrLabelCount.
//
// Complexity: O(len(word)·n³) polynomial products.
func Burau(s *braid.Spec, labels []int) (*matrix.Dense, error) {
	word := s.Word()
	if len(labels) != len(word) {
		return nil, fmt.Errorf("Burau: %d labels for %d generators: %w", len(labels), len(word), ErrLabelCount)
	}
	acc, err := matrix.Identity(s.Strands())
	if err != nil {
		return nil, fmt.Errorf("Burau: %w", err)
	}
	for j, g := range word {
		e, err := elementary(s.Strands(), g, labels[j])
		if err != nil {
			return nil, fmt.Errorf("Burau: generator %d: %w", j, err)
		}
		if acc, err = matrix.Mul(acc, e); err != nil {
			return nil, fmt.Errorf("Burau: generator %d: %w", j, err)
		}
	}

	return acc, nil
}

// ReducedBurau returns Burau(s, labels) without its last row and column,
// an (n-1)×(n-1) matrix.
func ReducedBurau(s *braid.Spec, labels []int) (*matrix.Dense, error) {
	full, err := Burau(s, labels)
	if err != nil {
		return nil, err
	}
	last := s.Strands() - 1
	red, err := full.DeleteRow(last)
	if err != nil {
		return nil, fmt.Errorf("ReducedBurau: %w", err)
	}
	if red, err = red.DeleteCol(last); err != nil {
		return nil, fmt.Errorf("ReducedBurau: %w", err)
	}

	return red, nil
}

// span returns [lo, hi).
func span(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}
