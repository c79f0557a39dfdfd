// SPDX-License-Identifier: MIT

package alexander

import (
	"fmt"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/matrix"
	"github.com/katalvlaran/alexdata/poly"
)

// Reduction returns the rows and columns of the reduced Burau matrix that
// survive the cap filtering for a kernel on n strands with k caps:
//
//	cols: [0, r-1) ∪ {r, r+2, .., n-4} ∪ {n-2}
//	rows: [0, r)   ∪ {r+1, r+3, .., n-3}
//
// Indices outside [0, n-1) are dropped and repeats removed, order kept.
// Each cap pair contributes one redundant row and column.
func Reduction(n, k int) (rows, cols []int) {
	r, m := n-2*k, n-1
	cols = span(0, r-1)
	cols = append(cols, stride(r, n-2, 2)...)
	cols = append(cols, n-2)
	rows = span(0, r)
	rows = append(rows, stride(r+1, n-1, 2)...)

	return clip(rows, m), clip(cols, m)
}

// stride returns lo, lo+step, .. below hi.
func stride(lo, hi, step int) []int {
	var out []int
	for i := lo; i < hi; i += step {
		out = append(out, i)
	}

	return out
}

// clip keeps the first occurrence of each index in [0, m).
func clip(idx []int, m int) []int {
	seen := make(map[int]bool, len(idx))
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= m || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}

	return out
}

// Polynomial returns the Alexander polynomial of k from its reduced Burau
// matrix.
//
// Stage 1: subtract x from the diagonal entries 0..r-2 (the open block).
// Stage 2: keep the rows and columns given by Reduction.
// Stage 3: take the exact determinant.
//
// Returns ErrDegenerateReduction when the selection is not square or empty,
// and wraps matrix.ErrDimensionMismatch when reduced is not (n-1)×(n-1).
func Polynomial(k *braid.Kernel, reduced *matrix.Dense) (*poly.Poly, error) {
	if reduced == nil {
		return nil, fmt.Errorf("Polynomial: %w", matrix.ErrNilMatrix)
	}
	n, r := k.Strands(), k.Open()
	if rr, cc := reduced.Shape(); rr != n-1 || cc != n-1 {
		return nil, fmt.Errorf("Polynomial: reduced matrix %dx%d on %d strands: %w", rr, cc, n, matrix.ErrDimensionMismatch)
	}
	rows, cols := Reduction(n, k.Caps())
	if len(rows) == 0 || len(rows) != len(cols) {
		return nil, fmt.Errorf("Polynomial: %d rows x %d cols (n=%d, k=%d): %w",
			len(rows), len(cols), n, k.Caps(), ErrDegenerateReduction)
	}

	shift, err := matrix.NewDense(n-1, n-1)
	if err != nil {
		return nil, fmt.Errorf("Polynomial: %w", err)
	}
	x := poly.Symbol(poly.X)
	for i := 0; i < r-1; i++ {
		if err = shift.Set(i, i, x); err != nil {
			return nil, fmt.Errorf("Polynomial: %w", err)
		}
	}
	shifted, err := matrix.Sub(reduced, shift)
	if err != nil {
		return nil, fmt.Errorf("Polynomial: %w", err)
	}

	sub, err := shifted.Induced(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Polynomial: %w", err)
	}
	det, err := matrix.Det(sub)
	if err != nil {
		return nil, fmt.Errorf("Polynomial: %w", err)
	}

	return det, nil
}
