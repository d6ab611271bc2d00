// Package polytope implements C8: the polytope skeleton built over a
// shared polyhedron.Store — an unordered vertex set, an unordered edge
// set, a cache of edges crossing the Plücker quadric, and the derived
// extremal-stabbing-line / representative-line caches spec.md §3
// ("Polytope skeleton") and §4.3 describe.
package polytope

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/plucker"
	"github.com/dhaumont/visilib-sub000/polyhedron"
)

// Edge is an unordered pair of vertex indices into the shared polyhedron.
type Edge struct {
	V1, V2 polyhedron.Index
}

func normalizedEdge(a, b polyhedron.Index) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Polytope is one node of the recursion: created by builder or splitter,
// mutated only by splitter, discarded when its recursion frame returns
// (spec.md §3 "Lifecycle").
type Polytope[T snum.S[T]] struct {
	store *polyhedron.Store[T]

	vertices map[polyhedron.Index]struct{}
	edgeSet  map[Edge]struct{}
	edges    []Edge

	quadricCache map[Edge][]plucker.Point[T]
	cacheValid   bool
}

// New returns an empty polytope bound to store.
func New[T snum.S[T]](store *polyhedron.Store[T]) *Polytope[T] {
	return &Polytope[T]{
		store:    store,
		vertices: make(map[polyhedron.Index]struct{}),
		edgeSet:  make(map[Edge]struct{}),
	}
}

// Store returns the shared polyhedron this polytope indexes into.
func (p *Polytope[T]) Store() *polyhedron.Store[T] { return p.store }

// AddVertex inserts v into the vertex set (idempotent).
func (p *Polytope[T]) AddVertex(v polyhedron.Index) {
	p.vertices[v] = struct{}{}
}

// HasVertex reports membership.
func (p *Polytope[T]) HasVertex(v polyhedron.Index) bool {
	_, ok := p.vertices[v]
	return ok
}

// Vertices returns the vertex set as a slice. The order follows Go map
// iteration and so can differ from one call to the next; callers that
// need determinism should sort the result.
func (p *Polytope[T]) Vertices() []polyhedron.Index {
	out := make([]polyhedron.Index, 0, len(p.vertices))
	for v := range p.vertices {
		out = append(out, v)
	}
	return out
}

// VertexCount returns the number of vertices.
func (p *Polytope[T]) VertexCount() int { return len(p.vertices) }

// AddEdge inserts the edge (a,b) if a != b and it is not already present
// (spec.md Invariant 3: "Polytope edges never connect a vertex to itself
// and are never duplicated").
func (p *Polytope[T]) AddEdge(a, b polyhedron.Index) {
	if a == b {
		return
	}
	e := normalizedEdge(a, b)
	if _, exists := p.edgeSet[e]; exists {
		return
	}
	p.edgeSet[e] = struct{}{}
	p.edges = append(p.edges, e)
	p.cacheValid = false
}

// RemoveEdge drops the edge (a,b) if present — used for collapse pruning
// (spec.md §4.3 "Collapse pruning").
func (p *Polytope[T]) RemoveEdge(a, b polyhedron.Index) {
	e := normalizedEdge(a, b)
	if _, exists := p.edgeSet[e]; !exists {
		return
	}
	delete(p.edgeSet, e)
	for i, cur := range p.edges {
		if cur == e {
			p.edges = append(p.edges[:i], p.edges[i+1:]...)
			break
		}
	}
	p.cacheValid = false
}

// Edges returns the edge set.
func (p *Polytope[T]) Edges() []Edge { return p.edges }

// EdgeCount returns the number of edges.
func (p *Polytope[T]) EdgeCount() int { return len(p.edges) }

// PruneCollapsedEdges removes every edge whose two endpoints are
// Plücker-identical within tolerance (spec.md §4.3 "Collapse pruning").
func (p *Polytope[T]) PruneCollapsedEdges() {
	var keep []Edge
	for _, e := range p.edges {
		v1 := p.store.Point(e.V1)
		v2 := p.store.Point(e.V2)
		if v1.D.AlmostEquals(v2.D) && v1.L.AlmostEquals(v2.L) {
			delete(p.edgeSet, e)
			continue
		}
		keep = append(keep, e)
	}
	p.edges = keep
	p.cacheValid = false
}
