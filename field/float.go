// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"strconv"
)

// Float is a float64 that satisfies Element. It follows IEEE-754: dividing by
// zero yields ±Inf or NaN rather than an error.
type Float float64

// Compile-time assertion: Float implements Element.
var _ Element[Float] = Float(0)

func (f Float) Add(o Float) Float { return f + o }
func (f Float) Sub(o Float) Float { return f - o }
func (f Float) Mul(o Float) Float { return f * o }
func (f Float) Div(o Float) Float { return f / o }
func (f Float) Neg() Float        { return -f }

// Abs returns |f|.
func (f Float) Abs() Float { return Float(math.Abs(float64(f))) }

// Cmp orders NaN below every other value so that pivot selection stays total.
func (f Float) Cmp(o Float) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	case f == o:
		return 0
	case math.IsNaN(float64(f)) && !math.IsNaN(float64(o)):
		return -1
	case !math.IsNaN(float64(f)) && math.IsNaN(float64(o)):
		return 1
	}

	return 0
}

func (f Float) Equal(o Float) bool    { return f == o }
func (f Float) IsZero() bool          { return f == 0 }
func (Float) Zero() Float             { return 0 }
func (Float) One() Float              { return 1 }
func (Float) FromInt64(n int64) Float { return Float(n) }
func (f Float) Float64() float64      { return float64(f) }
func (f Float) String() string        { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
