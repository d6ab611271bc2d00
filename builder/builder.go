// Package builder implements C9: builds the initial A×B stabbing
// polytope from two convex polygon sources (spec.md §4.2).
package builder

import (
	"fmt"

	"github.com/dhaumont/visilib-sub000/internal/predicate"
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/plucker"
	"github.com/dhaumont/visilib-sub000/polyhedron"
	"github.com/dhaumont/visilib-sub000/polytope"
)

// Options configures the builder.
type Options struct {
	Normalize bool // spec.md §6 "hypersphere_normalisation"
}

// Build runs spec.md §4.2: clips A and B for disjointness, appends their
// oriented edge hyperplanes and A×B stabbing vertices to store, and
// returns the initial polytope. Returns an error (mapping to
// VisibilityResult "failure" one level up) if A and B (both with at least
// 3 vertices) are coplanar, if clipping collapses either source to an
// empty ring, or if their centroids coincide — spec.md §4.2 step 1, §7,
// and scenario S6.
func Build[T snum.S[T]](store *polyhedron.Store[T], a, b mesh.Polygon[T], opts Options) (*polytope.Polytope[T], error) {
	eps := a.Plane.Normal.X.Eps()

	clippedA := a.Vertices
	clippedB := b.Vertices
	if len(a.Vertices) >= 3 && len(b.Vertices) >= 3 {
		coplanar := true
		for _, v := range b.Vertices {
			if predicate.ClassifyAgainstPlane(a.Plane, v, eps) != predicate.Boundary {
				coplanar = false
				break
			}
		}
		if coplanar {
			return nil, fmt.Errorf("builder: A and B are coplanar")
		}
		clippedA = predicate.ClipPolygonByPlane(a.Vertices, orientTowards(b.Plane, centroid(a.Vertices)), eps)
		clippedB = predicate.ClipPolygonByPlane(b.Vertices, orientTowards(a.Plane, centroid(b.Vertices)), eps)
	}
	if len(clippedA) == 0 || len(clippedB) == 0 {
		return nil, fmt.Errorf("builder: clipping collapsed a source to empty (coplanar or overlapping A/B)")
	}
	a = mesh.NewPolygon(clippedA, clippedB)
	b = mesh.NewPolygon(clippedB, clippedA)

	refLine := plucker.FromPoints(centroid(a.Vertices), centroid(b.Vertices))
	if snum.Sign(refLine.D.LengthSq()) == 0 {
		return nil, fmt.Errorf("builder: A and B share a reference point (coplanar or overlapping sources)")
	}

	aCount := a.EdgeCount()
	bCount := b.EdgeCount()

	aHyper := make([]polyhedron.Index, aCount)
	for i := 0; i < aCount; i++ {
		from, to := a.Edge(i)
		aHyper[i] = appendOrientedHyperplane(store, from, to, refLine, opts.Normalize)
	}
	bHyper := make([]polyhedron.Index, bCount)
	for j := 0; j < bCount; j++ {
		from, to := b.Edge(j)
		bHyper[j] = appendOrientedHyperplane(store, from, to, refLine, opts.Normalize)
	}

	pt := polytope.New(store)

	vertexIdx := make([][]polyhedron.Index, aCount)
	for i := range vertexIdx {
		vertexIdx[i] = make([]polyhedron.Index, bCount)
	}

	for i := 0; i < aCount; i++ {
		ai := a.VertexAt(i)
		aPrev := (i - 1 + aCount) % aCount
		for j := 0; j < bCount; j++ {
			bj := b.VertexAt(j)
			bPrev := (j - 1 + bCount) % bCount

			line := plucker.FromPoints(ai, bj)
			if opts.Normalize {
				line = line.Normalize()
			}
			facets := []int32{int32(aHyper[aPrev]), int32(aHyper[i]), int32(bHyper[bPrev]), int32(bHyper[j])}
			facets = sortedUnique(facets)

			idx := store.Append(line, facets, false)
			vertexIdx[i][j] = idx
			pt.AddVertex(idx)
		}
	}

	for i1 := 0; i1 < aCount; i1++ {
		for j1 := 0; j1 < bCount; j1++ {
			v1 := vertexIdx[i1][j1]
			f1 := store.Facets(v1)
			for i2 := i1; i2 < aCount; i2++ {
				for j2 := 0; j2 < bCount; j2++ {
					if i2 == i1 && j2 <= j1 {
						continue
					}
					v2 := vertexIdx[i2][j2]
					if polyhedron.SharesAtLeast(f1, store.Facets(v2), polyhedron.CommonFacetThreshold) {
						pt.AddEdge(v1, v2)
					}
				}
			}
		}
	}

	pt.PruneCollapsedEdges()
	pt.RecomputeQuadricCache()
	return pt, nil
}

// appendOrientedHyperplane builds the Plücker hyperplane of edge
// (from,to) and flips it, if needed, so its dot with refLine (a known
// A-B stabbing line) is negative — spec.md §4.2's orientation
// discipline ("a 3D line that stabs A and B has negative Plücker dot
// with every A-edge/B-edge hyperplane"), derived from a verified
// reference line instead of relying on the caller's polygon winding
// order (see DESIGN.md).
func appendOrientedHyperplane[T snum.S[T]](store *polyhedron.Store[T], from, to vecmath.Vector3[T], refLine plucker.Point[T], normalize bool) polyhedron.Index {
	h := plucker.FromPoints(from, to)
	if snum.Sign(h.Dot(refLine)) > 0 {
		h = h.Neg()
	}
	if normalize {
		h = h.Normalize()
	}
	return store.Append(h, nil, normalize)
}

func centroid[T snum.S[T]](pts []vecmath.Vector3[T]) vecmath.Vector3[T] {
	var sum vecmath.Vector3[T]
	if len(pts) == 0 {
		return sum
	}
	sum = pts[0]
	for _, p := range pts[1:] {
		sum = sum.Add(p)
	}
	return sum.Scale(sum.X.FromFloat64(1 / float64(len(pts))))
}

// orientTowards returns plane oriented so anchor lies on its positive
// side — used to build the guard-banded clip planes of step 1.
func orientTowards[T snum.S[T]](plane vecmath.Plane[T], anchor vecmath.Vector3[T]) vecmath.Plane[T] {
	if snum.Sign(plane.DistanceToPoint(anchor)) < 0 {
		return plane.Negate()
	}
	return plane
}

func sortedUnique(xs []int32) []int32 {
	out := append([]int32(nil), xs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	deduped := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			deduped = append(deduped, v)
		}
	}
	return deduped
}
