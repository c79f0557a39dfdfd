// SPDX-License-Identifier: MIT
// Package matrix provides the ring operations used by the Burau pipeline:
// element-wise Add/Sub, multiplication and the determinant.
//
// Notes:
//   - Inputs are validated up front and never mutated.
//   - Errors are plain sentinels wrapped once via matrixErrorf at the facade.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/alexdata/poly"
)

// MaxDetOrder bounds the order accepted by Det; the memo holds up to
// 2^MaxDetOrder partial minors.
const MaxDetOrder = 24

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDet = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns A + B element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: O(r·c) polynomial additions.
func Add(a, b *Dense) (*Dense, error) {
	return elementwise(opAdd, a, b, (*poly.Poly).Add)
}

// Sub returns A - B element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
// Complexity: O(r·c) polynomial subtractions.
func Sub(a, b *Dense) (*Dense, error) {
	return elementwise(opSub, a, b, (*poly.Poly).Sub)
}

// elementwise applies f over the flat buffers of equally shaped a and b.
func elementwise(tag string, a, b *Dense, f func(p, q *poly.Poly) *poly.Poly) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res := newDenseZeroOK(a.r, a.c)
	for k := range a.data {
		res.data[k] = f(a.data[k], b.data[k])
	}

	return res, nil
}

// Mul performs matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i-k-j loop over the flat buffers, skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - O(r·k·c) polynomial products.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res := newDenseZeroOK(a.r, b.c)
	var (
		i, j, k int
		av      *poly.Poly
		acc     []*poly.Poly
	)
	for i = 0; i < a.r; i++ {
		// accumulate row i of the result before storing it
		acc = make([]*poly.Poly, b.c)
		for j = range acc {
			acc[j] = poly.Zero()
		}
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av.IsZero() {
				continue // skip zero for performance
			}
			for j = 0; j < b.c; j++ {
				bv := b.data[k*b.c+j]
				if bv.IsZero() {
					continue
				}
				acc[j] = acc[j].Add(av.Mul(bv))
			}
		}
		copy(res.data[i*b.c:(i+1)*b.c], acc)
	}

	return res, nil
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: validate non-nil, square, order ≤ MaxDetOrder.
//   - Stage 2: Laplace expansion along rows; the minor below row i is keyed by
//     the bitmask of already used columns, so each of the 2^n minors is
//     computed once.
//
// Behavior highlights:
//   - Division-free, so it is exact over Laurent polynomials.
//   - The empty (0×0) matrix has determinant 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrTooLarge (wrapped with "Det").
//
// Complexity:
//   - O(2^n · n) polynomial products, O(2^n) memo entries.
func Det(m *Dense) (*poly.Poly, error) {
	if m == nil {
		return nil, matrixErrorf(opDet, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opDet, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	n := m.r
	if n > MaxDetOrder {
		return nil, matrixErrorf(opDet, fmt.Errorf("order %d > %d: %w", n, MaxDetOrder, ErrTooLarge))
	}

	memo := make(map[uint32]*poly.Poly, 1<<uint(n))
	var minor func(row int, used uint32) *poly.Poly
	minor = func(row int, used uint32) *poly.Poly {
		if row == n {
			return poly.One()
		}
		if v, ok := memo[used]; ok {
			return v
		}
		acc := poly.Zero()
		free := 0 // position of col among the unused columns; fixes the cofactor sign
		for col := 0; col < n; col++ {
			bit := uint32(1) << uint(col)
			if used&bit != 0 {
				continue
			}
			if entry := m.data[row*n+col]; !entry.IsZero() {
				t := entry.Mul(minor(row+1, used|bit))
				if free%2 == 1 {
					acc = acc.Sub(t)
				} else {
					acc = acc.Add(t)
				}
			}
			free++
		}
		memo[used] = acc

		return acc
	}

	return minor(0, 0), nil
}
