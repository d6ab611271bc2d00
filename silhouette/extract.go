package silhouette

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
)

// Options configures the extractor (spec.md §6 "silhouette_optimisation").
type Options struct {
	SilhouetteOptimisation bool
}

// sourcePlanes returns A's and B's supporting planes, each oriented so
// the other source's centroid lies on its positive side — the "between
// the two source supporting planes" test of spec.md §4.4.
func sourcePlanes[T snum.S[T]](a, b mesh.Polygon[T]) (aPlane, bPlane vecmath.Plane[T]) {
	aPlane = a.Plane
	if snum.Sign(aPlane.DistanceToPoint(centroid(b.Vertices))) < 0 {
		aPlane = aPlane.Negate()
	}
	bPlane = b.Plane
	if snum.Sign(bPlane.DistanceToPoint(centroid(a.Vertices))) < 0 {
		bPlane = bPlane.Negate()
	}
	return aPlane, bPlane
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

// candidate reports whether some vertex of tri lies on the positive side
// of both aPlane and bPlane ("between the two source supporting
// planes", spec.md §4.4).
func candidate[T snum.S[T]](tri vecmath.Triangle[T], aPlane, bPlane vecmath.Plane[T]) bool {
	for i := 0; i < 3; i++ {
		v := tri.Vertex(i)
		if snum.Sign(aPlane.DistanceToPoint(v)) >= 0 && snum.Sign(bPlane.DistanceToPoint(v)) >= 0 {
			return true
		}
	}
	return false
}

// Extract runs C5 over one occluder mesh, returning every silhouette it
// contains (spec.md §4.4). Faces lying outside the A∪B shaft are never
// visited; every connected in-shaft region becomes one Silhouette, added
// to the result even if it ends up with zero boundary edges (an edgeless
// silhouette still occludes rays, per spec.md §4.4's closing note).
func Extract[T snum.S[T]](a, b mesh.Polygon[T], id mesh.GeometryID, m *mesh.Mesh[T], opts Options) []*Silhouette {
	aPlane, bPlane := sourcePlanes(a, b)

	allPts := append(append([]vecmath.Vector3[T]{}, a.Vertices...), b.Vertices...)
	hullPlanes := mesh.ConvexHullPlanes(allPts)

	adjacency := m.Adjacency()
	n := len(m.Faces)
	isCandidate := make([]bool, n)
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		isCandidate[i] = candidate(m.Triangle(i), aPlane, bPlane)
	}

	var results []*Silhouette
	for start := 0; start < n; start++ {
		if visited[start] || !isCandidate[start] {
			continue
		}

		s := &Silhouette{MeshID: id}
		queue := []int32{int32(start)}
		visited[start] = true

		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			s.Faces = append(s.Faces, fi)

			tri := m.Triangle(int(fi))
			for e := 0; e < 3; e++ {
				from, to := tri.Edge(e)
				if !potentiallyInShaft(from, to, hullPlanes) {
					continue
				}

				neighbour := adjacency[fi][e]
				isBoundary := neighbour < 0
				var optOut bool
				if !isBoundary && opts.SilhouetteOptimisation {
					nTri := m.Triangle(int(neighbour))
					optOut = !potentialSilhouette(tri, nTri, aPlane, bPlane, a, b)
				}

				if isBoundary || optOut {
					edge := &Edge{Face: fi, EdgeInFace: int8(e), Active: true}
					s.Edges = append(s.Edges, edge)
					s.availableCount++
					continue
				}

				if !visited[neighbour] && isCandidate[neighbour] {
					visited[neighbour] = true
					queue = append(queue, neighbour)
				}
			}
		}

		results = append(results, s)
	}
	return results
}

// potentiallyInShaft approximates edge (from,to) by its bounding sphere
// and rejects it only if some hull plane places the whole sphere
// strictly outside (spec.md §4.4).
func potentiallyInShaft[T snum.S[T]](from, to vecmath.Vector3[T], hullPlanes []vecmath.Plane[T]) bool {
	c := from.Add(to).Scale(from.X.FromFloat64(0.5))
	r := to.Sub(from).Length().Mul(from.X.FromFloat64(0.5))
	for _, h := range hullPlanes {
		d := h.DistanceToPoint(c)
		if d.Cmp(r) > 0 {
			return false
		}
	}
	return true
}

// potentialSilhouette implements the five-step neighbour test of
// spec.md §4.4.
func potentialSilhouette[T snum.S[T]](f0, f1 vecmath.Triangle[T], aPlane, bPlane vecmath.Plane[T], a, b mesh.Polygon[T]) bool {
	if !candidate(f0, aPlane, bPlane) || !candidate(f1, aPlane, bPlane) {
		return false
	}

	p0 := f0.Plane()
	p1 := f1.Plane()

	for _, src := range [][]vecmath.Vector3[T]{a.Vertices, b.Vertices} {
		if len(src) == 0 {
			continue
		}
		if planeIntersectsPointSet(p0, src) || planeIntersectsPointSet(p1, src) {
			continue
		}
		d0 := snum.Sign(p0.DistanceToPoint(src[0]))
		d1 := snum.Sign(p1.DistanceToPoint(src[0]))
		if d0 != 0 && d1 != 0 && d0 == d1 {
			return false
		}
	}

	s0 := snum.Sign(p0.Constant)
	s1 := snum.Sign(p1.Constant)
	if s0 != 0 && s1 != 0 && s0 != s1 {
		return true
	}

	for i := 0; i < 3; i++ {
		d := p1.DistanceToPoint(f0.Vertex(i))
		if snum.Sign(d) > 0 {
			return true
		}
	}
	return false
}

// planeIntersectsPointSet reports whether plane straddles pts (some
// vertex strictly positive and some strictly negative).
func planeIntersectsPointSet[T snum.S[T]](plane vecmath.Plane[T], pts []vecmath.Vector3[T]) bool {
	seenPos, seenNeg := false, false
	for _, p := range pts {
		switch snum.Sign(plane.DistanceToPoint(p)) {
		case 1:
			seenPos = true
		case -1:
			seenNeg = true
		}
	}
	return seenPos && seenNeg
}
