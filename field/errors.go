// SPDX-License-Identifier: MIT

package field

import "errors"

// ErrZeroDenominator is returned when a fraction is built with a zero denominator.
var ErrZeroDenominator = errors.New("field: zero denominator")

// ErrDivisionByZero is the panic value raised by exact division by zero.
var ErrDivisionByZero = errors.New("field: division by zero")
