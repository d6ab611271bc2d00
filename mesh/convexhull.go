package mesh

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// hullFace is a triangular face of an incremental 3D convex hull, stored
// by point index with an outward-pointing plane.
type hullFace[T snum.S[T]] struct {
	a, b, c int
	plane   vecmath.Plane[T]
}

// ConvexHullPlanes computes the 3D convex hull of points and returns its
// outward-pointing supporting planes, one per hull face — the
// preparation step of spec.md §4.4 ("build the 3D convex hull of the
// vertices of A ∪ B as an outward-pointing set of planes"). Coincident
// and near-coplanar input is tolerated: if no non-degenerate tetrahedron
// can be found (the points are coplanar or collinear), only the plane
// through the first three points is returned, with no hull planes around
// it. This case is reached by point or segment sources, which the
// builder (C9) accepts.
func ConvexHullPlanes[T snum.S[T]](points []vecmath.Vector3[T]) []vecmath.Plane[T] {
	if len(points) < 3 {
		return nil
	}

	i0, i1, i2, i3, ok := findInitialTetrahedron(points)
	if !ok {
		return []vecmath.Plane[T]{vecmath.PlaneFromCoplanarPoints(points[0], points[1], points[2])}
	}

	centroid := points[i0].Add(points[i1]).Add(points[i2]).Add(points[i3]).Scale(points[i0].X.FromFloat64(0.25))

	faces := []hullFace[T]{
		makeOutwardFace(points, i0, i1, i2, centroid),
		makeOutwardFace(points, i0, i2, i3, centroid),
		makeOutwardFace(points, i0, i3, i1, centroid),
		makeOutwardFace(points, i1, i3, i2, centroid),
	}

	used := map[int]bool{i0: true, i1: true, i2: true, i3: true}
	eps := points[0].X.Eps()

	for idx, p := range points {
		if used[idx] {
			continue
		}
		var visible []int
		for fi, f := range faces {
			if snum.SignEps(f.plane.DistanceToPoint(p), eps) > 0 {
				visible = append(visible, fi)
			}
		}
		if len(visible) == 0 {
			continue // p is inside (or on) the current hull
		}

		visibleSet := make(map[int]bool, len(visible))
		for _, fi := range visible {
			visibleSet[fi] = true
		}

		type edge struct{ u, v int }
		edgeCount := map[edge]int{}
		addEdge := func(u, v int) {
			if u > v {
				u, v = v, u
			}
			edgeCount[edge{u, v}]++
		}
		for _, fi := range visible {
			f := faces[fi]
			addEdge(f.a, f.b)
			addEdge(f.b, f.c)
			addEdge(f.c, f.a)
		}

		var horizon []edge
		for _, fi := range visible {
			f := faces[fi]
			tris := [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}}
			for _, t := range tris {
				u, v := t[0], t[1]
				key := edge{u, v}
				if key.u > key.v {
					key.u, key.v = key.v, key.u
				}
				if edgeCount[key] == 1 {
					horizon = append(horizon, edge{u, v})
				}
			}
		}

		var kept []hullFace[T]
		for fi, f := range faces {
			if !visibleSet[fi] {
				kept = append(kept, f)
			}
		}
		for _, h := range horizon {
			kept = append(kept, makeOutwardFace(points, h.u, h.v, idx, centroid))
		}
		faces = kept
		used[idx] = true
	}

	out := make([]vecmath.Plane[T], len(faces))
	for i, f := range faces {
		out[i] = f.plane
	}
	return out
}

// makeOutwardFace builds the plane of triangle (a,b,c) and flips it, if
// needed, to point away from centroid (an interior reference point).
func makeOutwardFace[T snum.S[T]](points []vecmath.Vector3[T], a, b, c int, centroid vecmath.Vector3[T]) hullFace[T] {
	pl := vecmath.PlaneFromCoplanarPoints(points[a], points[b], points[c])
	if snum.Sign(pl.DistanceToPoint(centroid)) > 0 {
		pl = pl.Negate()
		a, c = c, a
	}
	return hullFace[T]{a: a, b: b, c: c, plane: pl}
}

// findInitialTetrahedron picks 4 indices spanning a non-degenerate
// tetrahedron: the two points farthest apart, the point farthest from
// that segment, and the point farthest from the resulting plane.
func findInitialTetrahedron[T snum.S[T]](points []vecmath.Vector3[T]) (i0, i1, i2, i3 int, ok bool) {
	n := len(points)
	best := points[0].X.Eps()
	i0, i1 = 0, 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := points[i].Sub(points[j]).LengthSq()
			if d.Cmp(best) > 0 {
				best = d
				i0, i1 = i, j
			}
		}
	}

	maxDist := points[0].X.Eps()
	i2 = -1
	for k := 0; k < n; k++ {
		if k == i0 || k == i1 {
			continue
		}
		d := pointLineDistSq(points[k], points[i0], points[i1])
		if d.Cmp(maxDist) > 0 {
			maxDist = d
			i2 = k
		}
	}
	if i2 < 0 {
		return 0, 0, 0, 0, false
	}

	plane := vecmath.PlaneFromCoplanarPoints(points[i0], points[i1], points[i2])
	maxAbs := plane.Constant.Eps()
	i3 = -1
	for k := 0; k < n; k++ {
		if k == i0 || k == i1 || k == i2 {
			continue
		}
		d := plane.DistanceToPoint(points[k]).Abs()
		if d.Cmp(maxAbs) > 0 {
			maxAbs = d
			i3 = k
		}
	}
	if i3 < 0 {
		return 0, 0, 0, 0, false
	}
	return i0, i1, i2, i3, true
}

func pointLineDistSq[T snum.S[T]](p, a, b vecmath.Vector3[T]) T {
	ab := b.Sub(a)
	denom := ab.LengthSq()
	if snum.Sign(denom) == 0 {
		return p.Sub(a).LengthSq()
	}
	t := p.Sub(a).Dot(ab).Div(denom)
	closest := a.Add(ab.Scale(t))
	return p.Sub(closest).LengthSq()
}
