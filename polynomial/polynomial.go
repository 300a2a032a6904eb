// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/polysche/field"
)

// ---------- Formatting literals ----------
const (
	_fmtVecOpen  = "["
	_fmtVecClose = "]"
	_fmtSep      = ", "
	_fmtPlus     = " + "
	_fmtX        = " X"
	_fmtPow      = "^"
)

const panicNegativeOrder = "polynomial: Derivative: negative order"

// Polynomial is an immutable vector-valued polynomial.
// coeffs[d][i] is the coefficient of X^d in output column i.
//
// The zero value has no slots; build values with New or FromCoeffs.
type Polynomial[E field.Element[E]] struct {
	coeffs [][]E // len == Degree+1, every row len == Width
}

// New returns the all-zero polynomial with degree+1 slots of width n.
//
// Errors:
//   - ErrNegativeDegree (degree < 0), ErrEmpty (n <= 0).
//
// Complexity:
//   - Time O((degree+1)*n), Space O((degree+1)*n).
func New[E field.Element[E]](degree, n int) (Polynomial[E], error) {
	if degree < 0 {
		return Polynomial[E]{}, fmt.Errorf("New(%d, %d): %w", degree, n, ErrNegativeDegree)
	}
	if n <= 0 {
		return Polynomial[E]{}, fmt.Errorf("New(%d, %d): %w", degree, n, ErrEmpty)
	}

	return zeros[E](degree+1, n), nil
}

// FromCoeffs builds a polynomial from an explicit grid, rows ordered by
// ascending degree. The grid is copied.
//
// Errors:
//   - ErrEmpty (no rows or zero-width first row), ErrRagged.
func FromCoeffs[E field.Element[E]](coeffs [][]E) (Polynomial[E], error) {
	if len(coeffs) == 0 || len(coeffs[0]) == 0 {
		return Polynomial[E]{}, fmt.Errorf("FromCoeffs: %w", ErrEmpty)
	}
	n := len(coeffs[0])
	for d, row := range coeffs {
		if len(row) != n {
			return Polynomial[E]{}, fmt.Errorf("FromCoeffs: degree %d has width %d, want %d: %w", d, len(row), n, ErrRagged)
		}
	}

	return Polynomial[E]{coeffs: copyGrid(coeffs)}, nil
}

// zeros allocates slots×n additive identities. Internal; arguments are trusted.
func zeros[E field.Element[E]](slots, n int) Polynomial[E] {
	c := make([][]E, slots)
	for d := range c {
		c[d] = field.Vector[E](n)
	}

	return Polynomial[E]{coeffs: c}
}

// copyGrid deep-copies a coefficient grid.
func copyGrid[E any](src [][]E) [][]E {
	out := make([][]E, len(src))
	for d, row := range src {
		out[d] = append([]E(nil), row...)
	}

	return out
}

// Degree returns the declared degree (number of slots minus one).
// The zero value reports -1.
func (p Polynomial[E]) Degree() int { return len(p.coeffs) - 1 }

// Width returns N, the length of every coefficient vector.
func (p Polynomial[E]) Width() int {
	if len(p.coeffs) == 0 {
		return 0
	}

	return len(p.coeffs[0])
}

// Coeff returns a copy of the coefficient vector of X^d.
func (p Polynomial[E]) Coeff(d int) ([]E, error) {
	if d < 0 || d >= len(p.coeffs) {
		return nil, fmt.Errorf("Coeff(%d): %w", d, ErrOutOfRange)
	}

	return append([]E(nil), p.coeffs[d]...), nil
}

// Coeffs returns a copy of the whole grid, rows ordered by ascending degree.
func (p Polynomial[E]) Coeffs() [][]E { return copyGrid(p.coeffs) }

// Equal reports whether p and o have the same shape and equal coefficients.
// Elements compare through their Equal method, so 2/4 equals 1/2.
func (p Polynomial[E]) Equal(o Polynomial[E]) bool {
	return cmp.Equal(p.coeffs, o.coeffs)
}

// String renders "[c0] + [c1] X + [c2] X^2 ...", one term per slot.
func (p Polynomial[E]) String() string {
	var sb strings.Builder
	for d, row := range p.coeffs {
		if d > 0 {
			sb.WriteString(_fmtPlus)
		}
		sb.WriteString(_fmtVecOpen)
		for i, c := range row {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, c)
		}
		sb.WriteString(_fmtVecClose)
		if d >= 1 {
			sb.WriteString(_fmtX)
		}
		if d > 1 {
			sb.WriteString(_fmtPow)
			sb.WriteString(strconv.Itoa(d))
		}
	}

	return sb.String()
}
