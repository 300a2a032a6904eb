// Package polysche builds exact interpolation polynomials from linear
// constraints and turns them into numerical stencils: the weight vectors
// used by finite-difference and finite-volume schemes.
//
// Everything is generic over a field element type, so the same code runs on
// int64 rationals, arbitrary-precision big.Rat values or plain float64.
//
// Under the hood, everything is organized under five subpackages:
//
//	rational/   — exact p/q arithmetic over any signed integer width
//	field/      — the Element interface plus Float and BigRat implementations
//	matrix/     — dense matrices, Gauss-Jordan, Solve, Inverse, LU and Det
//	polynomial/ — vector-valued polynomials: Eval, Derivative, Primitive, Integrate
//	scheme/     — the incremental Builder and the CentralDifference/FiniteVolume presets
//
// Quick example (second-order central difference):
//
//	b, _ := scheme.NewRational(2)
//	P := b.Polynomial()
//	b, _ = b.AddEqn(P.EvalInt(-1))
//	b, _ = b.AddEqn(P.EvalInt(0))
//	b, _ = b.AddEqn(P.EvalInt(1))
//	S, _ := b.Solve()
//	S.Derivative(2).EvalInt(0) // [1 -2 1]
//
//	go get github.com/katalvlaran/polysche
package polysche
