// Package splitter implements C10: clips a polytope by a single
// hyperplane into negative/positive sub-polytopes (spec.md §4.3).
package splitter

import (
	"github.com/dhaumont/visilib-sub000/internal/predicate"
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/plucker"
	"github.com/dhaumont/visilib-sub000/polyhedron"
	"github.com/dhaumont/visilib-sub000/polytope"
)

// Kind reports which of the three outcomes a Split call produced.
type Kind int

const (
	// Positive means every vertex of P classified non-negative: P is
	// passed through unchanged, L and R are both nil.
	Positive Kind = iota
	// Negative means every vertex classified non-positive: P is passed
	// through unchanged, L and R are both nil.
	Negative
	// Boundary means P was actually split (or lies entirely in h): L is
	// the negative-side sub-polytope, R the positive-side one.
	Boundary
)

// Split clips p by hyperplane h (polyhedron index k), per spec.md §4.3.
// When the returned Kind is Positive or Negative, the caller must keep
// using p unchanged; L and R are populated only for Boundary.
// normalize controls whether newly interpolated split vertices are
// normalised before being appended to store (spec.md §6
// "hypersphere_normalisation").
func Split[T snum.S[T]](p *polytope.Polytope[T], h plucker.Point[T], k int32, normalize bool) (kind Kind, l, r *polytope.Polytope[T]) {
	store := p.Store()
	verts := p.Vertices()

	class := make(map[polyhedron.Index]int, len(verts))
	delta := make(map[polyhedron.Index]T, len(verts))
	negCount, posCount := 0, 0
	for _, v := range verts {
		d := h.Dot(store.Point(v))
		delta[v] = d
		c := snum.Sign(d)
		class[v] = c
		switch {
		case c < 0:
			negCount++
		case c > 0:
			posCount++
		}
	}

	if negCount == 0 && posCount == 0 {
		for _, v := range verts {
			store.AddFacet(v, k)
		}
		l = polytope.New(store)
		r = polytope.New(store)
		for _, v := range verts {
			l.AddVertex(v)
			r.AddVertex(v)
		}
		for _, e := range p.Edges() {
			l.AddEdge(e.V1, e.V2)
			r.AddEdge(e.V1, e.V2)
		}
		return Boundary, l, r
	}
	if negCount == 0 {
		return Positive, nil, nil
	}
	if posCount == 0 {
		return Negative, nil, nil
	}

	for _, v := range verts {
		if class[v] == 0 {
			store.AddFacet(v, k)
		}
	}

	l = polytope.New(store)
	r = polytope.New(store)
	since := polyhedron.Index(store.Len())
	var splitVerts []polyhedron.Index

	for _, e := range p.Edges() {
		v1, v2 := e.V1, e.V2
		c1, c2 := class[v1], class[v2]
		s := c1 + c2

		switch {
		case s > 0:
			r.AddVertex(v1)
			r.AddVertex(v2)
			r.AddEdge(v1, v2)
		case s < 0:
			l.AddVertex(v1)
			l.AddVertex(v2)
			l.AddEdge(v1, v2)
		case c1 == 0 && c2 == 0:
			l.AddVertex(v1)
			l.AddVertex(v2)
			l.AddEdge(v1, v2)
			r.AddVertex(v1)
			r.AddVertex(v2)
			r.AddEdge(v1, v2)
		default:
			// One endpoint strictly negative, the other strictly
			// positive: split the edge. Orient so v1 is the negative one.
			if c1 > 0 {
				v1, v2 = v2, v1
			}
			d1, d2 := delta[v1], delta[v2]

			fs := polyhedron.IntersectPlusOne(store.Facets(v1), store.Facets(v2), k)

			m, found := store.FindByFacetSet(since, fs)
			if !found {
				newPoint := predicate.Interpolate(d1, d2, store.Point(v1), store.Point(v2))
				m = store.Append(newPoint, fs, normalize)
			}
			splitVerts = append(splitVerts, m)

			l.AddVertex(v1)
			l.AddVertex(m)
			l.AddEdge(v1, m)

			r.AddVertex(v2)
			r.AddVertex(m)
			r.AddEdge(m, v2)
		}
	}

	for i := 0; i < len(splitVerts); i++ {
		for j := i + 1; j < len(splitVerts); j++ {
			v1, v2 := splitVerts[i], splitVerts[j]
			if v1 == v2 {
				continue
			}
			if !polyhedron.SharesAtLeast(store.Facets(v1), store.Facets(v2), polyhedron.CommonFacetThreshold) {
				continue
			}
			p1, p2 := store.Point(v1), store.Point(v2)
			if p1.D.AlmostEquals(p2.D) && p1.L.AlmostEquals(p2.L) {
				continue
			}
			l.AddEdge(v1, v2)
			r.AddEdge(v1, v2)
		}
	}

	l.PruneCollapsedEdges()
	r.PruneCollapsedEdges()

	return Boundary, l, r
}
