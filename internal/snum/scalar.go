// Package snum supplies the abstract scalar ring the visibility engine is
// built over: every geometric type from vecmath up through polyhedron is
// generic on a scalar satisfying S, so the same code runs at float32,
// float64, or arbitrary-precision resolution (spec.md §3, "Scalar S").
package snum

// S is the abstract ring a scalar type must support: addition, subtraction,
// multiplication, division, negation, absolute value, square root, and a
// three-way comparison. FromFloat64 lets generic callers manufacture new
// scalars (zero, one, literal constants) from an existing value of the
// same type. Eps returns this type's structural tolerance ε(S); predicate
// code must only ever compare magnitudes against Eps(), never against a
// literal.
type S[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	Sqrt() T
	Cmp(T) int
	Float64() float64
	FromFloat64(float64) T
	Eps() T
}

// Sign is the single predicate layer spec.md §3 requires: every structural
// decision (which side of a plane, which side of the quadric) must flow
// through here, never through a direct comparison against zero.
func Sign[T S[T]](x T) int {
	e := x.Eps()
	if x.Abs().Cmp(e) <= 0 {
		return 0
	}
	var zero T
	zero = x.FromFloat64(0)
	if x.Cmp(zero) < 0 {
		return -1
	}
	return 1
}

// SignEps is Sign but against a caller-supplied tolerance rather than the
// scalar's own Eps(); used where a strip/guard-band tolerance differs from
// the type's structural epsilon (e.g. the Sutherland-Hodgman clip guard
// band in predicate.ClipPolygonByPlane).
func SignEps[T S[T]](x, eps T) int {
	if x.Abs().Cmp(eps) <= 0 {
		return 0
	}
	var zero T
	zero = x.FromFloat64(0)
	if x.Cmp(zero) < 0 {
		return -1
	}
	return 1
}

// AlmostEqual reports whether a and b are equal to within ε(T).
func AlmostEqual[T S[T]](a, b T) bool {
	return Sign(a.Sub(b)) == 0
}
