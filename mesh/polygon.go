package mesh

import "github.com/dhaumont/visilib-sub000/internal/vecmath"
import "github.com/dhaumont/visilib-sub000/internal/snum"

// Polygon is an ordered ring of 3D points with a supporting plane — the
// representation used for the A and B visibility sources (spec.md §3
// "Convex polygon"). A Polygon with fewer than 3 vertices (a point or a
// segment) still carries a synthetic plane so the rest of the pipeline
// never special-cases degenerate sources.
type Polygon[T snum.S[T]] struct {
	Vertices []vecmath.Vector3[T]
	Plane    vecmath.Plane[T]
}

// NewPolygon builds a Polygon from its vertex ring. If other has at
// least one vertex, its centroid is used as a fallback direction for
// orienting a degenerate (fewer than 3 vertex) polygon's synthetic
// normal — the "A→B centroid direction" spec.md §3/§4.2 calls for.
func NewPolygon[T snum.S[T]](vertices []vecmath.Vector3[T], other []vecmath.Vector3[T]) Polygon[T] {
	p := Polygon[T]{Vertices: vertices}
	switch len(vertices) {
	case 0:
		return p
	case 1:
		p.Plane = syntheticPlane(vertices[0], other)
	case 2:
		p.Plane = syntheticPlane(centroidOf(vertices), other)
	default:
		p.Plane = vecmath.PlaneFromCoplanarPoints(vertices[0], vertices[1], vertices[2])
	}
	return p
}

func centroidOf[T snum.S[T]](pts []vecmath.Vector3[T]) vecmath.Vector3[T] {
	if len(pts) == 0 {
		return vecmath.Vector3[T]{}
	}
	sum := pts[0]
	for _, p := range pts[1:] {
		sum = sum.Add(p)
	}
	inv := sum.X.FromFloat64(1 / float64(len(pts)))
	return sum.Scale(inv)
}

// syntheticPlane builds a plane through anchor whose normal approximates
// the direction from anchor to the centroid of other (the degenerate-
// polygon fallback of spec.md §3).
func syntheticPlane[T snum.S[T]](anchor vecmath.Vector3[T], other []vecmath.Vector3[T]) vecmath.Plane[T] {
	if len(other) == 0 {
		one := anchor.X.FromFloat64(1)
		zero := vecmath.Zero(anchor.X)
		return vecmath.PlaneFromNormalAndPoint(vecmath.Vector3[T]{X: one, Y: zero, Z: zero}, anchor)
	}
	dir := centroidOf(other).Sub(anchor).Normalize()
	return vecmath.PlaneFromNormalAndPoint(dir, anchor)
}

// EdgeCount returns max(len(Vertices), 3): degenerate sources still
// contribute exactly 3 synthesised edges (spec.md §4.2 step 2).
func (p Polygon[T]) EdgeCount() int {
	if len(p.Vertices) >= 3 {
		return len(p.Vertices)
	}
	return 3
}

// Edge returns the from/to points of the i-th edge (0-indexed,
// i < EdgeCount()). For a degenerate polygon the three synthetic edges
// form a small triangle around the single vertex/segment, coplanar with
// Plane, so they still yield well-defined oriented hyperplanes.
func (p Polygon[T]) Edge(i int) (from, to vecmath.Vector3[T]) {
	n := len(p.Vertices)
	if n >= 3 {
		return p.Vertices[i], p.Vertices[(i+1)%n]
	}
	tri := p.syntheticTriangle()
	return tri[i], tri[(i+1)%3]
}

// VertexAt returns the i-th vertex of the ring used for edge-hyperplane
// construction: the real vertex if the source has >= 3, or the i-th
// point of the synthesised triangle otherwise.
func (p Polygon[T]) VertexAt(i int) vecmath.Vector3[T] {
	if len(p.Vertices) >= 3 {
		return p.Vertices[i]
	}
	return p.syntheticTriangle()[i]
}

// syntheticTriangle builds 3 coplanar points around a degenerate
// source's vertex/vertices, used to synthesise exactly 3 edges.
func (p Polygon[T]) syntheticTriangle() [3]vecmath.Vector3[T] {
	var anchor vecmath.Vector3[T]
	switch len(p.Vertices) {
	case 1:
		anchor = p.Vertices[0]
	case 2:
		anchor = centroidOf(p.Vertices)
	}
	n := p.Plane.Normal
	// Build two vectors spanning the plane.
	ref := vecmath.Vector3[T]{X: n.Y.FromFloat64(0), Y: n.Y.FromFloat64(0), Z: n.Y.FromFloat64(1)}
	if snum.Sign(n.Cross(ref).LengthSq()) == 0 {
		ref = vecmath.Vector3[T]{X: n.Y.FromFloat64(1), Y: n.Y.FromFloat64(0), Z: n.Y.FromFloat64(0)}
	}
	u := n.Cross(ref).Normalize()
	v := n.Cross(u).Normalize()

	r := n.Y.FromFloat64(1e-3)
	p0 := anchor.Add(u.Scale(r))
	p1 := anchor.Sub(u.Scale(r)).Add(v.Scale(r))
	p2 := anchor.Sub(u.Scale(r)).Sub(v.Scale(r))
	return [3]vecmath.Vector3[T]{p0, p1, p2}
}
