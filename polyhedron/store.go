package polyhedron

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/plucker"
)

// Index addresses a point in a Store. Indices are handed out once and
// never move (spec.md §5).
type Index int32

// Store is the append-only arena backing one query's polyhedron. Every
// entry holds the Plücker point itself, its quadric-relative position,
// whether it has been normalised, and its facet set (spec.md §3
// "Polyhedron").
type Store[T snum.S[T]] struct {
	points     []plucker.Point[T]
	positions  []plucker.Position
	normalized []bool
	facets     [][]int32
}

// New returns an empty polyhedron store.
func New[T snum.S[T]]() *Store[T] {
	return &Store[T]{}
}

// Append adds a point with the given facet set (must already be sorted
// and deduplicated by the caller, typically via WithAdded/Intersect) and
// returns its Index. normalize, if true, normalises the point before
// storing it (spec.md §6 "hypersphere_normalisation").
func (s *Store[T]) Append(p plucker.Point[T], facets []int32, normalize bool) Index {
	if normalize {
		p = p.Normalize()
	}
	s.points = append(s.points, p)
	s.positions = append(s.positions, p.QuadricPosition())
	s.normalized = append(s.normalized, normalize)
	s.facets = append(s.facets, facets)
	return Index(len(s.points) - 1)
}

// Len returns the number of points appended so far.
func (s *Store[T]) Len() int { return len(s.points) }

// Point returns the Plücker point at i.
func (s *Store[T]) Point(i Index) plucker.Point[T] { return s.points[i] }

// Position returns the cached quadric position at i.
func (s *Store[T]) Position(i Index) plucker.Position { return s.positions[i] }

// Facets returns the facet set at i. Callers must not mutate the
// returned slice in place; use AddFacet or WithAdded to derive a new one.
func (s *Store[T]) Facets(i Index) []int32 { return s.facets[i] }

// AddFacet attaches hyperplane index h to vertex i's facet set in place,
// re-sorting only if h breaks the existing order (spec.md §4.3 "Attach k
// to on-boundary vertices").
func (s *Store[T]) AddFacet(i Index, h int32) {
	s.facets[i] = WithAdded(s.facets[i], int32(h))
}

// FindByFacetSet scans entries appended at index >= since for one whose
// facet set equals fs, returning its Index and true if found. This
// implements the deduplication spec.md §4.3 requires when the splitter
// creates a new vertex: "scan all polyhedron entries appended since the
// start of this split call; if an identical facet set already exists,
// reuse its index".
func (s *Store[T]) FindByFacetSet(since Index, fs []int32) (Index, bool) {
	for i := int(since); i < len(s.facets); i++ {
		if Equal(s.facets[i], fs) {
			return Index(i), true
		}
	}
	return -1, false
}
