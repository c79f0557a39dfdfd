// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *poly.Poly with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/alexdata/poly"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"        // method tag used in error wrappers
	ctxSet    = "Set"       // method tag used in error wrappers
	ctxApply  = "Apply"     // method tag used in error wrappers
	ctxInduce = "Induced"   // ctor/tag for Dense.Induced
	ctxDelRow = "DeleteRow" // ctor/tag for Dense.DeleteRow
	ctxDelCol = "DeleteCol" // ctor/tag for Dense.DeleteCol
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of polynomials.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - entries are never nil; the zero entry is poly.Zero().
type Dense struct {
	r, c int          // row and column counts (zero allowed only via Induced/Delete*)
	data []*poly.Poly // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: fill the buffer with the shared zero polynomial (values are immutable).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols), nil
}

// newDenseZeroOK allows 0×N and N×0 shapes produced by selections.
func newDenseZeroOK(rows, cols int) *Dense {
	zero := poly.Zero()
	buf := make([]*poly.Poly, rows*cols)
	for i := range buf {
		buf[i] = zero // safe to share: polynomials are immutable
	}

	return &Dense{r: rows, c: cols, data: buf}
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := poly.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// FromRows builds a matrix from a rectangular slice of rows; nil entries
// are rejected with ErrNilEntry.
func FromRows(rows [][]*poly.Poly) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := newDenseZeroOK(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*poly.Poly, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). A nil v is rejected with ErrNilEntry.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *poly.Poly) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilEntry)
	}
	m.data[idx] = v

	return nil
}

// Clone returns an independent copy. Entries are shared, which is safe
// because polynomials are immutable.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]*poly.Poly, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Induced materialises the submatrix picked by rowsIdx × colsIdx (copy).
// Indices may repeat; order is preserved.
//
// Errors:
//   - ErrOutOfRange when any index is outside the base shape.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := newDenseZeroOK(rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// DeleteRow returns a copy of m without row i.
func (m *Dense) DeleteRow(i int) (*Dense, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s: row %d: %w", ctxDelRow, i, ErrOutOfRange)
	}

	return m.Induced(skip(m.r, i), span(m.c))
}

// DeleteCol returns a copy of m without column j.
func (m *Dense) DeleteCol(j int) (*Dense, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s: col %d: %w", ctxDelCol, j, ErrOutOfRange)
	}

	return m.Induced(span(m.r), skip(m.c, j))
}

// span returns [0, 1, ..., n-1].
func span(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// skip returns [0..n) without k.
func skip(n, k int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != k {
			out = append(out, i)
		}
	}

	return out
}

// Do visits each element (i,j) in row-major order; stops when f returns false.
func (m *Dense) Do(f func(i, j int, v *poly.Poly) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// A nil result aborts with ErrNilEntry; elements written before remain updated.
func (m *Dense) Apply(f func(i, j int, v *poly.Poly) *poly.Poly) error {
	var i, j, base int
	var nv *poly.Poly
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if nv == nil {
				return denseErrorf(ctxApply, i, j, ErrNilEntry)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Equal reports whether a and b share shape and entries.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !a.data[k].Equal(b.data[k]) {
			return false
		}
	}

	return true
}

// String renders rows as "[p00, p01]\n[p10, p11]\n" for diagnostics.
// Complexity: O(r*c) plus polynomial formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
