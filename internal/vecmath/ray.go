package vecmath

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Ray is a parametric ray origin + t*direction, clipped to [TNear, TFar].
// Adapted from math32.Ray; TNear/TFar fields mirror the parametric bounds
// spec.md §4.5 requires the ray backend to honour.
type Ray[T snum.S[T]] struct {
	Origin, Direction Vector3[T]
	TNear, TFar       T
}

// At returns the point at parameter t along the ray.
func (r Ray[T]) At(t T) Vector3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}

// NewSegmentRay builds a ray spanning the closed segment from `from` to
// `to`, with TNear=0, TFar=1 in the (non-normalised) direction's units —
// the shape the solver casts along back-projected Plücker lines.
func NewSegmentRay[T snum.S[T]](from, to Vector3[T]) Ray[T] {
	dir := to.Sub(from)
	zero := Zero(dir.X)
	one := dir.X.FromFloat64(1)
	return Ray[T]{Origin: from, Direction: dir, TNear: zero, TFar: one}
}
