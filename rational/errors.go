// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrInvalidRational is returned when a fraction is constructed with a zero denominator.
	ErrInvalidRational = errors.New("rational: invalid rational (zero denominator)")

	// ErrDivisionByZero is the panic value raised by Div, DivInt and Inv on a zero divisor.
	// Division mirrors Go integer division: it is a programmer error, not a returned error.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax is returned by Parse when the input is not of the form "p" or "p/q".
	ErrSyntax = errors.New("rational: invalid syntax")
)
