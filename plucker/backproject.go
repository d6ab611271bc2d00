package plucker

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// BackProjectToLine recovers the 3D line (anchor point + direction)
// carried by a Plücker point, per spec.md §4.1 "Back-to-3D": the anchor
// is d×l/|d|², the direction is d (not yet normalised here, callers that
// need a unit vector call Normalize on the result).
func (a Point[T]) BackProjectToLine() (anchor, direction vecmath.Vector3[T]) {
	dd := a.D.LengthSq()
	if snum.Sign(dd) == 0 {
		return vecmath.Vector3[T]{}, a.D
	}
	one := dd.FromFloat64(1)
	anchor = a.D.Cross(a.L).Scale(one.Div(dd))
	return anchor, a.D
}

// BackProjectToSegment recovers two 3D points defining the line, by
// intersecting the recovered line with the planes axis·x = +1 and
// axis·x = −1, where axis is the world axis whose absolute dot with
// a.D is maximal (spec.md §4.1). This is the inverse of FromPoints up to
// a scalar, matching testable property 6 ("round-trip back-projection").
func (a Point[T]) BackProjectToSegment() (p0, p1 vecmath.Vector3[T]) {
	anchor, dir := a.BackProjectToLine()
	axis := dir.MaxAxis()

	one := dir.X.FromFloat64(1)
	negOne := one.Neg()

	p0 = intersectAxisPlane(anchor, dir, axis, one)
	p1 = intersectAxisPlane(anchor, dir, axis, negOne)
	return p0, p1
}

// intersectAxisPlane intersects the line anchor + t*dir with the plane
// "component[axis] == value".
func intersectAxisPlane[T snum.S[T]](anchor, dir vecmath.Vector3[T], axis int, value T) vecmath.Vector3[T] {
	d := dir.Component(axis)
	a := anchor.Component(axis)
	if snum.Sign(d) == 0 {
		return anchor
	}
	t := value.Sub(a).Div(d)
	return anchor.Add(dir.Scale(t))
}
