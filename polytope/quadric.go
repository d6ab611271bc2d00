package polytope

import (
	"github.com/dhaumont/visilib-sub000/internal/predicate"
	"github.com/dhaumont/visilib-sub000/plucker"
)

// RecomputeQuadricCache rebuilds, for every edge, its intersection points
// with the Plücker quadric (spec.md §4.2 step 5, and §4.6 "recompute P's
// edge-quadric cache" on every solver recursion).
func (p *Polytope[T]) RecomputeQuadricCache() {
	cache := make(map[Edge][]plucker.Point[T], len(p.edges))
	for _, e := range p.edges {
		v1 := p.store.Point(e.V1)
		v2 := p.store.Point(e.V2)
		roots := predicate.QuadricRoots(v1, v2)
		if len(roots) > 0 {
			cache[e] = roots
		}
	}
	p.quadricCache = cache
	p.cacheValid = true
}

// HasRealEdge reports whether any edge of the polytope crosses the
// quadric — spec.md §4.6: "if P contains no real (quadric-crossing)
// edge: return hidden".
func (p *Polytope[T]) HasRealEdge() bool {
	if !p.cacheValid {
		p.RecomputeQuadricCache()
	}
	return len(p.quadricCache) > 0
}

// QuadricCrossings returns the cached intersection points for edge e, or
// nil if e does not cross the quadric.
func (p *Polytope[T]) QuadricCrossings(e Edge) []plucker.Point[T] {
	if !p.cacheValid {
		p.RecomputeQuadricCache()
	}
	return p.quadricCache[e]
}

// ExtremalStabbingLines returns every cached quadric-edge intersection
// point across the whole polytope — the extremal stabbing lines of
// spec.md's glossary, each tangent to the polytope and corresponding to
// a real 3D line.
func (p *Polytope[T]) ExtremalStabbingLines() []plucker.Point[T] {
	if !p.cacheValid {
		p.RecomputeQuadricCache()
	}
	var out []plucker.Point[T]
	for _, pts := range p.quadricCache {
		out = append(out, pts...)
	}
	return out
}

// RepresentativeLine computes a single interior Plücker point projected
// onto the quadric: the sum of the polytope's vertices is carried toward
// one cached extremal stabbing line (the first ExtremalStabbingLines
// returns; which one that is follows map order and is not defined) and
// the first resulting quadric crossing is returned (spec.md §4.3 "an
// optional representative line").
// Returns ok=false when the polytope has no vertices or no extremal
// stabbing line to project toward, in which case callers fall back to
// ExtremalStabbingLines (spec.md §4.6, §7 "an imaginary representative
// line triggers using ESLs instead").
func (p *Polytope[T]) RepresentativeLine() (line plucker.Point[T], ok bool) {
	verts := p.Vertices()
	if len(verts) == 0 {
		return line, false
	}
	sum := p.store.Point(verts[0])
	for _, v := range verts[1:] {
		sum = sum.Add(p.store.Point(v))
	}

	esls := p.ExtremalStabbingLines()
	if len(esls) == 0 {
		return line, false
	}
	target := esls[0]

	roots := predicate.QuadricRoots(sum, target)
	if len(roots) == 0 {
		return line, false
	}
	return roots[0], true
}
