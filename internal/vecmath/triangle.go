package vecmath

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Triangle is three vertices in 3D. Adapted from math32.Triangle.
type Triangle[T snum.S[T]] struct {
	A, B, C Vector3[T]
}

// Normal returns the triangle's (non-unit-preserving-safe) face normal.
func (t Triangle[T]) Normal() Vector3[T] {
	return t.C.Sub(t.B).Cross(t.A.Sub(t.B)).Normalize()
}

// Plane returns the supporting plane of the triangle.
func (t Triangle[T]) Plane() Plane[T] {
	return PlaneFromCoplanarPoints(t.A, t.B, t.C)
}

// Centroid returns the triangle's midpoint.
func (t Triangle[T]) Centroid() Vector3[T] {
	third := t.A.X.FromFloat64(1.0 / 3.0)
	return t.A.Add(t.B).Add(t.C).Scale(third)
}

// Vertex returns the i-th vertex (0, 1, 2).
func (t Triangle[T]) Vertex(i int) Vector3[T] {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// Edge returns the i-th edge (0: A-B, 1: B-C, 2: C-A) as (from, to).
func (t Triangle[T]) Edge(i int) (from, to Vector3[T]) {
	switch i {
	case 0:
		return t.A, t.B
	case 1:
		return t.B, t.C
	default:
		return t.C, t.A
	}
}

// BoundingSphere returns a (not necessarily minimal) sphere covering the
// triangle, centred at the centroid — used by silhouette's cheap
// "potentially inside the shaft" edge test (spec.md §4.4).
func (t Triangle[T]) BoundingSphere() (center Vector3[T], radius T) {
	c := t.Centroid()
	r := c.Sub(t.A).Length()
	if d := c.Sub(t.B).Length(); d.Cmp(r) > 0 {
		r = d
	}
	if d := c.Sub(t.C).Length(); d.Cmp(r) > 0 {
		r = d
	}
	return c, r
}
