// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FromRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/polysche/field"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of field elements.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[E field.Element[E]] struct {
	r, c int // row and column counts (> 0)
	data []E // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix filled with the additive identity of E.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill it with E's Zero().
//
// Behavior highlights:
//   - Explicit fill: the Go zero value of E is not assumed to be the field zero.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E field.Element[E]](rows, cols int) (*Dense[E], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[E]{r: rows, c: cols, data: field.Vector[E](rows * cols)}, nil
}

// FromRows builds a Dense from a rectangular grid, copying every element.
// The caller keeps ownership of rows; later changes to it do not leak in.
//
// Errors:
//   - ErrInvalidDimensions (no rows or zero-length rows), ErrBadShape (ragged).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[E field.Element[E]](rows [][]E) (*Dense[E], error) {
	r, c, err := ValidateRows(rows)
	if err != nil {
		return nil, err
	}
	data := make([]E, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense[E]{r: r, c: c, data: data}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the matrix as a freshly allocated row grid.
func (m *Dense[E]) ToRows() [][]E {
	out := make([][]E, m.r)
	for i := range out {
		out[i] = make([]E, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
func (m *Dense[E]) Clone() Matrix[E] { return m.clone() }

// clone is the typed variant used by kernels.
func (m *Dense[E]) clone() *Dense[E] {
	data := make([]E, len(m.data))
	copy(data, m.data)

	return &Dense[E]{r: m.r, c: m.c, data: data}
}

// Equal reports whether o has the same shape and element-wise equal values.
// Element comparison goes through E's Equal method, so 2/4 equals 1/2.
func (m *Dense[E]) Equal(o *Dense[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}

	return cmp.Equal(m.data, o.data)
}

// String renders one bracketed row per line.
func (m *Dense[E]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// swapRows exchanges rows a and b in place. Internal; indices are trusted.
func (m *Dense[E]) swapRows(a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// asDense returns a private *Dense copy of any Matrix: a plain clone for
// *Dense, an At-driven copy for other implementations.
func asDense[E field.Element[E]](m Matrix[E]) (*Dense[E], error) {
	if d, ok := m.(*Dense[E]); ok {
		return d.clone(), nil
	}
	out, err := NewDense[E](m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v E
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Compile-time assertion: *Dense implements Matrix.
var _ Matrix[field.Float] = (*Dense[field.Float])(nil)
