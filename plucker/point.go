// Package plucker implements C2: the 6-coordinate oriented-line
// representation used throughout the visibility engine. A Plücker point
// (d, l) represents the oriented 3D line through points p and q via
// d = q−p, l = p×q. It lies on the Plücker quadric (d·l = 0) iff it
// corresponds to a real 3D line; otherwise it is imaginary (spec.md §3,
// "Invariant Q").
package plucker

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// Point is a Plücker point (d, l) over scalar T.
type Point[T snum.S[T]] struct {
	D, L vecmath.Vector3[T]
}

// FromPoints builds the Plücker point of the oriented line through p, q.
func FromPoints[T snum.S[T]](p, q vecmath.Vector3[T]) Point[T] {
	return Point[T]{D: q.Sub(p), L: p.Cross(q)}
}

// Add returns the componentwise sum of two Plücker points (used to build
// a polytope's representative line, spec.md §4.3).
func (a Point[T]) Add(b Point[T]) Point[T] {
	return Point[T]{D: a.D.Add(b.D), L: a.L.Add(b.L)}
}

// Sub returns a − b.
func (a Point[T]) Sub(b Point[T]) Point[T] {
	return Point[T]{D: a.D.Sub(b.D), L: a.L.Sub(b.L)}
}

// Scale returns a scaled by s.
func (a Point[T]) Scale(s T) Point[T] {
	return Point[T]{D: a.D.Scale(s), L: a.L.Scale(s)}
}

// Neg returns the point with reversed line orientation.
func (a Point[T]) Neg() Point[T] {
	return Point[T]{D: a.D.Neg(), L: a.L.Neg()}
}

// Norm returns the Euclidean norm of the full 6-vector, √(|d|²+|l|²),
// used by Normalize.
func (a Point[T]) Norm() T {
	return a.D.LengthSq().Add(a.L.LengthSq()).Sqrt()
}

// Normalize divides a by its 6-vector norm. The zero point is returned
// unchanged.
func (a Point[T]) Normalize() Point[T] {
	n := a.Norm()
	if snum.Sign(n) == 0 {
		return a
	}
	one := n.FromFloat64(1)
	return a.Scale(one.Div(n))
}

// Dot is the permuted Plücker inner product a·b = d_a·l_b + l_a·d_b. Its
// sign gives the relative orientation of the two lines: 0 = meet,
// negative = skew ccw, positive = skew cw (spec.md §3).
func (a Point[T]) Dot(b Point[T]) T {
	return a.D.Dot(b.L).Add(a.L.Dot(b.D))
}

// QuadricValue returns a·a = 2(d·l); its sign is Invariant Q's
// real-vs-imaginary test.
func (a Point[T]) QuadricValue() T {
	return a.Dot(a)
}

// Position classifies a point's location relative to the Plücker
// quadric.
type Position int

const (
	Negative Position = iota
	Boundary
	Positive
)

// QuadricPosition classifies a relative to the quadric using the shared
// sign predicate.
func (a Point[T]) QuadricPosition() Position {
	switch snum.Sign(a.QuadricValue()) {
	case 0:
		return Boundary
	case -1:
		return Negative
	default:
		return Positive
	}
}

// IsReal reports whether a lies on the quadric to within ε(T) —
// equivalently, whether it corresponds to a genuine 3D line rather than
// an imaginary one.
func (a Point[T]) IsReal() bool {
	return a.QuadricPosition() == Boundary
}
