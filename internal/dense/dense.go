// SPDX-License-Identifier: MIT

// Package dense - complex row-major storage & safe accessors.
//
// The package is a numeric oracle for small registers: tests materialize
// operator sums as matrices and compare symbolic results against plain
// linear algebra. It is not a simulation backend.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Keep the public surface panic-free: At/Set return errors.
//   - Keep loop orders fixed so results are reproducible bit for bit.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Mul: O(r*k*c); Adjoint: O(r*c).
package dense

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxMul      = "Mul"
	ctxAdd      = "Add"
	ctxAllClose = "AllClose"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

func shapeErrorf(method string, a, b *Dense, err error) error {
	return fmt.Errorf("Dense.%s(%dx%d, %dx%d): %w", method, a.r, a.c, b.r, b.c, err)
}

// Dense is a concrete row-major complex matrix.
type Dense struct {
	r, c int          // row and column counts (> 0)
	data []complex128 // len == r*c, offset = i*c + j
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
func (m *Dense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//   - ErrNaNInf when either component of v is NaN or ±Inf.
func (m *Dense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Mul returns a·b.
//
// Implementation:
//   - i-k-j loop order over the flat buffers; a zero a[i,k] skips its row of b.
//
// Errors:
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, shapeErrorf(ctxMul, a, b, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*b.c : (k+1)*b.c]
			for j, v := range bk {
				row[j] += aik * v
			}
		}
	}

	return out, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrDimensionMismatch on unequal shapes.
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, shapeErrorf(ctxAdd, a, b, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}

	return out, nil
}

// Scale returns alpha·m.
func (m *Dense) Scale(alpha complex128) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out
}

// Adjoint returns the conjugate transpose m†.
func (m *Dense) Adjoint() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out
}

// AllClose reports whether |a[i,j] − b[i,j]| <= atol + rtol·|b[i,j]| for
// every entry.
//
// Errors:
//   - ErrDimensionMismatch on unequal shapes.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if a.r != b.r || a.c != b.c {
		return false, shapeErrorf(ctxAllClose, a, b, ErrDimensionMismatch)
	}
	for i, v := range a.data {
		w := b.data[i]
		if cmplx.Abs(v-w) > atol+rtol*cmplx.Abs(w) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbs returns the largest entry modulus.
func (m *Dense) MaxAbs() float64 {
	best := 0.0
	for _, v := range m.data {
		best = math.Max(best, cmplx.Abs(v))
	}

	return best
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
