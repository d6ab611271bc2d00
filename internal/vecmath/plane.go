package vecmath

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Plane represents a plane in 3D space by its unit normal and the
// constant d such that normal·x + d = 0 for any point x on the plane.
// Adapted from math32.Plane.
type Plane[T snum.S[T]] struct {
	Normal   Vector3[T]
	Constant T
}

// PlaneFromNormalAndPoint builds a plane from a normal vector and a point
// known to lie on the plane.
func PlaneFromNormalAndPoint[T snum.S[T]](normal, point Vector3[T]) Plane[T] {
	return Plane[T]{Normal: normal, Constant: normal.Dot(point).Neg()}
}

// PlaneFromCoplanarPoints builds a plane from three coplanar points,
// oriented so the normal follows the right-hand rule around a, b, c.
func PlaneFromCoplanarPoints[T snum.S[T]](a, b, c Vector3[T]) Plane[T] {
	normal := c.Sub(b).Cross(a.Sub(b)).Normalize()
	return PlaneFromNormalAndPoint(normal, a)
}

// DistanceToPoint returns the signed distance of point from the plane.
func (p Plane[T]) DistanceToPoint(point Vector3[T]) T {
	return p.Normal.Dot(point).Add(p.Constant)
}

// IntersectLine returns the point where the infinite line through origin
// with the given direction crosses the plane, or ok=false if the line is
// parallel to the plane (spec.md §4.1 plane_intersect_line).
func (p Plane[T]) IntersectLine(origin, direction Vector3[T]) (point Vector3[T], ok bool) {
	denom := p.Normal.Dot(direction)
	if snum.Sign(denom) == 0 {
		return Vector3[T]{}, false
	}
	t := p.Normal.Dot(origin).Add(p.Constant).Neg().Div(denom)
	return origin.Add(direction.Scale(t)), true
}

// Negate flips the plane's orientation (used when an A-edge/B-edge
// hyperplane needs its half-space reversed, spec.md §4.2 step 2).
func (p Plane[T]) Negate() Plane[T] {
	return Plane[T]{Normal: p.Normal.Neg(), Constant: p.Constant.Neg()}
}
