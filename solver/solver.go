// Package solver implements C11: the top-level aperture-finder
// recursion that drives the splitter and ray backend to a final
// visibility verdict (spec.md §4.6).
package solver

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/internal/vislog"
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/plucker"
	"github.com/dhaumont/visilib-sub000/polyhedron"
	"github.com/dhaumont/visilib-sub000/polytope"
	"github.com/dhaumont/visilib-sub000/raybackend"
	"github.com/dhaumont/visilib-sub000/silhouette"
	"github.com/dhaumont/visilib-sub000/splitter"
)

// occluderState is the (occluders, polytope_lines) pair resolve_internal
// threads through the recursion: once populated at a node, it is either
// reused by a child (the representative line used to build it still
// falls on that child's side of the splitting hyperplane) or discarded
// so the child recomputes its own.
type occluderState[T snum.S[T]] struct {
	lines       []plucker.Point[T]
	silhouettes []*silhouette.Silhouette
}

func (s occluderState[T]) empty() bool { return len(s.silhouettes) == 0 }

// Solver owns every piece of state one query's recursion shares: the
// polyhedron, the silhouette container and its active/processed
// bookkeeping, the two sources, and the ray backend (spec.md §5 "one
// VisibilityExactQuery instance owns one polyhedron, one polytope tree,
// and one silhouette container").
type Solver[T snum.S[T]] struct {
	store       *polyhedron.Store[T]
	silhouettes *silhouette.Container
	scene       *mesh.OccluderSet[T]
	backend     raybackend.Backend[T]
	a, b        mesh.Polygon[T]
	cfg         Config
	stats       *Stats
	sink        DebugSink[T]
	log         *vislog.Logger

	approxNormal vecmath.Vector3[T]

	// foundVisible mirrors the C++ aperture finder's aGlobalResult
	// side-channel (original_source/visilib/visibility_aperture_finder.h):
	// once any node along the walk proves an aperture or an exhausted
	// active-edge list, the whole query is visible even though the
	// recursion that found it keeps walking the rest of the tree and may
	// itself return Hidden or Failure.
	foundVisible bool
}

// New returns a solver ready to resolve queries over one polyhedron and
// silhouette container. stats and sink may be nil.
func New[T snum.S[T]](
	store *polyhedron.Store[T],
	silhouettes *silhouette.Container,
	scene *mesh.OccluderSet[T],
	backend raybackend.Backend[T],
	a, b mesh.Polygon[T],
	cfg Config,
	stats *Stats,
	sink DebugSink[T],
) *Solver[T] {
	normal := centroid(b.Vertices).Sub(centroid(a.Vertices)).Normalize()
	return &Solver[T]{
		store: store, silhouettes: silhouettes, scene: scene, backend: backend,
		a: a, b: b, cfg: cfg, stats: stats, sink: sink, approxNormal: normal,
		log: vislog.New("solver", vislog.Default),
	}
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

// Resolve runs the top-level call resolve_internal(P_initial, [], [], 0)
// of spec.md §4.6.
func (s *Solver[T]) Resolve(p *polytope.Polytope[T]) Result {
	result := s.resolveInternal(p, occluderState[T]{}, 0)
	if result == Failure {
		return Failure
	}
	if s.foundVisible {
		return Visible
	}
	return result
}

func (s *Solver[T]) resolveInternal(p *polytope.Polytope[T], state occluderState[T], depth int) Result {
	if depth > MaxDepth {
		s.log.Warn("recursion depth exceeded", vislog.Int("depth", depth))
		return Failure
	}
	if s.stats != nil && depth > s.stats.MaxDepthReached {
		s.stats.MaxDepthReached = depth
	}

	p.RecomputeQuadricCache()
	if !p.HasRealEdge() {
		return Hidden
	}

	if state.empty() {
		lines := s.collectLines(p)
		for _, line := range lines {
			p0, p1 := line.BackProjectToSegment()
			if s.sink != nil {
				s.sink.AddSamplingLine(p0, p1)
			}
			hits := s.backend.Intersect(vecmath.NewSegmentRay(p0, p1))
			if s.stats != nil {
				s.stats.RaysCast++
			}
			if len(hits) == 0 {
				// An aperture makes the whole query visible (spec.md §4.6
				// "mark global=visible"), but unless an early stop is
				// configured the walk still has to finish exploring this
				// polytope's subtree — a deeper Failure must still
				// override this Visible (see foundVisible on Solver).
				s.foundVisible = true
				if s.stats != nil {
					s.stats.AperturesFound++
				}
				if s.sink != nil {
					s.sink.AddStabbingLine(p0, p1)
				}
				if s.cfg.DetectApertureOnly {
					return Visible
				}
				continue
			}
			for _, h := range hits {
				if sil := s.silhouetteForHit(h); sil != nil {
					state.silhouettes = appendUniqueSilhouette(state.silhouettes, sil)
				}
			}
		}
		state.lines = lines
	}

	if s.isOccluded(state) {
		return Hidden
	}

	sil, e, ok := s.silhouettes.ActiveEdge()
	if !ok {
		s.foundVisible = true
		return Visible
	}

	sil.Deactivate(e)
	defer sil.Reactivate(e)

	a, b := s.edgeEndpoints(sil, e)
	if !e.Lifted {
		h := plucker.FromPoints(a, b)
		if s.cfg.Normalize {
			h = h.Normalize()
		}
		e.Hyperplane = s.store.Append(h, nil, s.cfg.Normalize)
		e.Lifted = true
	}
	H := s.store.Point(e.Hyperplane)
	if s.sink != nil {
		s.sink.AddExtremalStabbingLine(a, b)
	}

	if !s.edgeInsidePolytope(a, b, p) {
		return s.resolveInternal(p, state, depth+1)
	}

	kind, l, r := splitter.Split(p, H, int32(e.Hyperplane), s.cfg.Normalize)
	if s.stats != nil {
		s.stats.SplitCount++
	}
	if kind != splitter.Boundary {
		return s.resolveInternal(p, state, depth+1)
	}

	rep, hasRep := p.RepresentativeLine()
	reuseL := hasRep && snum.Sign(H.Dot(rep)) <= 0
	reuseR := hasRep && snum.Sign(H.Dot(rep)) >= 0

	lState := state
	if !reuseL {
		lState = occluderState[T]{}
	}
	sil.Push(e)
	resL := s.resolveInternal(l, lState, depth+1)
	sil.Pop()
	if resL == Failure {
		return Failure
	}
	if s.cfg.DetectApertureOnly && resL == Visible {
		return Visible
	}

	rState := state
	if !reuseR {
		rState = occluderState[T]{}
	}
	resR := s.resolveInternal(r, rState, depth+1)
	if resR == Failure {
		return Failure
	}

	if resL == Visible || resR == Visible {
		return Visible
	}
	return Hidden
}

// collectLines gathers the set of Plücker lines to cast rays along: one
// representative line when configured and available, else every
// extremal stabbing line (spec.md §4.6, falling back per §7 "an
// imaginary representative line triggers using ESLs instead").
func (s *Solver[T]) collectLines(p *polytope.Polytope[T]) []plucker.Point[T] {
	if s.cfg.RepresentativeLineSampling {
		if rep, ok := p.RepresentativeLine(); ok {
			return []plucker.Point[T]{rep}
		}
	}
	return p.ExtremalStabbingLines()
}

// isOccluded reports whether some silhouette touched by state's hits has
// every active edge already spent (available count zero) and blocks
// every candidate line via every processed edge's hyperplane (spec.md
// §4.6 "is_occluded").
func (s *Solver[T]) isOccluded(state occluderState[T]) bool {
	for _, sil := range state.silhouettes {
		if sil.AvailableCount() != 0 {
			continue
		}
		if s.silhouetteBlocksAll(sil, state.lines) {
			return true
		}
	}
	return false
}

func (s *Solver[T]) silhouetteBlocksAll(sil *silhouette.Silhouette, lines []plucker.Point[T]) bool {
	processed := sil.Processed()
	if len(processed) == 0 {
		return false
	}
	for _, line := range lines {
		for _, e := range processed {
			if !e.Lifted {
				return false
			}
			h := s.store.Point(e.Hyperplane)
			if snum.Sign(h.Dot(line)) >= 0 {
				return false
			}
		}
	}
	return true
}

// edgeInsidePolytope approximates spec.md §4.6 "is_edge_inside_polytope":
// build two Plücker hyperplanes, each the pencil of lines orthogonal to
// the mesh edge at one of its endpoints spanned by the approximate A→B
// normal, and require P to have a vertex on the non-positive side of the
// first and a vertex on the non-negative side of the second.
func (s *Solver[T]) edgeInsidePolytope(a, b vecmath.Vector3[T], p *polytope.Polytope[T]) bool {
	h1 := plucker.FromPoints(a, a.Add(s.approxNormal))
	h2 := plucker.FromPoints(b, b.Add(s.approxNormal))

	var foundNeg, foundPos bool
	for _, v := range p.Vertices() {
		pv := s.store.Point(v)
		if !foundNeg && snum.Sign(h1.Dot(pv)) <= 0 {
			foundNeg = true
		}
		if !foundPos && snum.Sign(h2.Dot(pv)) >= 0 {
			foundPos = true
		}
		if foundNeg && foundPos {
			return true
		}
	}
	return false
}

func (s *Solver[T]) edgeEndpoints(sil *silhouette.Silhouette, e *silhouette.Edge) (a, b vecmath.Vector3[T]) {
	m := s.scene.Mesh(sil.MeshID)
	tri := m.Triangle(int(e.Face))
	return tri.Edge(int(e.EdgeInFace))
}

func (s *Solver[T]) silhouetteForHit(h raybackend.Hit) *silhouette.Silhouette {
	for _, sil := range s.silhouettes.Silhouettes {
		if sil.MeshID != h.GeometryID {
			continue
		}
		for _, f := range sil.Faces {
			if f == h.FaceID {
				return sil
			}
		}
	}
	return nil
}

func appendUniqueSilhouette(list []*silhouette.Silhouette, sil *silhouette.Silhouette) []*silhouette.Silhouette {
	for _, x := range list {
		if x == sil {
			return list
		}
	}
	out := make([]*silhouette.Silhouette, len(list), len(list)+1)
	copy(out, list)
	return append(out, sil)
}
