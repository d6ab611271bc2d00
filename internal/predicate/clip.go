package predicate

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// VertexClass is a vertex's classification against a clipping plane with
// a guard band (spec.md §4.1 clip_polygon_by_plane).
type VertexClass int

const (
	Exterior VertexClass = iota
	Boundary
	Interior
)

// ClassifyAgainstPlane classifies point against plane using an inflated
// positive half-space of width eps: distances in [-eps, eps] are
// Boundary, d > eps is Interior, d < -eps is Exterior. "Positive" here
// means the half-space the plane's normal points into, matching the
// guard-band convention spec.md §4.1 describes.
func ClassifyAgainstPlane[T snum.S[T]](plane vecmath.Plane[T], point vecmath.Vector3[T], eps T) VertexClass {
	d := plane.DistanceToPoint(point)
	switch snum.SignEps(d, eps) {
	case 0:
		return Boundary
	case 1:
		return Interior
	default:
		return Exterior
	}
}

// ClipPolygonByPlane clips a (possibly open, <3 vertices treated as a
// degenerate ring) convex polygon against plane using Sutherland-Hodgman,
// keeping the inflated positive half-space (Interior ∪ Boundary) and
// inserting an interpolated vertex on every edge that crosses between
// Exterior and the kept side (Interior or Boundary), in either direction
// (spec.md §4.1). Returns the clipped ring,
// which may be empty.
func ClipPolygonByPlane[T snum.S[T]](poly []vecmath.Vector3[T], plane vecmath.Plane[T], eps T) []vecmath.Vector3[T] {
	n := len(poly)
	if n == 0 {
		return nil
	}

	dist := make([]T, n)
	class := make([]VertexClass, n)
	for i, p := range poly {
		dist[i] = plane.DistanceToPoint(p)
		class[i] = ClassifyAgainstPlane(plane, p, eps)
	}

	out := make([]vecmath.Vector3[T], 0, n+1)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cur, next := poly[i], poly[j]
		curIn := class[i] != Exterior
		nextIn := class[j] != Exterior

		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			out = append(out, Interpolate(dist[i], dist[j], cur, next))
		}
	}
	return out
}
