// SPDX-License-Identifier: MIT

// Package scheme turns a list of linear constraints into an exact
// interpolation polynomial whose columns are stencil weights.
//
// Workflow:
//  1. b, _ := scheme.NewRational(order) fixes the degree.
//  2. P := b.Polynomial() is the canonical polynomial: column k is X^k.
//  3. Each physical condition becomes one row by applying it to P,
//     e.g. P.EvalInt(-1) for "the sample at -1" or P.Integrate(a, c) for
//     "the cell average over [a, c]". Feed rows with AddEqn (or Add with a
//     Constraint) in the order the samples will be interpreted.
//  4. S, err := b.Solve() inverts the accumulated system. Column k of S is
//     the weight polynomial of the sample introduced by the k-th row, so
//     S.Derivative(1).EvalInt(0) is the first-derivative stencil at 0.
//
// Builders are immutable values: AddEqn returns a new Builder and never
// disturbs the receiver, so partial builders can be shared and branched.
//
// CentralDifference and FiniteVolume build the two classical families
// directly.
package scheme
