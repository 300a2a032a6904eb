// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// Constructors return these wrapped with the constructor name; callers match
// them with errors.Is. Panics are reserved for programmer errors (negative
// derivative order).

package polynomial

import "errors"

var (
	// ErrEmpty is returned when a polynomial would have no coefficient
	// slots or zero-width coefficient vectors.
	ErrEmpty = errors.New("polynomial: empty coefficient grid")

	// ErrRagged is returned when coefficient vectors differ in length.
	ErrRagged = errors.New("polynomial: coefficient vectors differ in width")

	// ErrNegativeDegree is returned by New for a degree below zero.
	ErrNegativeDegree = errors.New("polynomial: negative degree")

	// ErrOutOfRange indicates a degree index outside [0, Degree].
	ErrOutOfRange = errors.New("polynomial: degree index out of range")
)
