// Package silhouette implements C5: per-occluder flood fill of the faces
// lying between sources A and B, and the SilhouetteEdge bookkeeping the
// solver drives (spec.md §3 "Silhouette", §4.4).
package silhouette

import (
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/polyhedron"
)

// Edge is one candidate silhouette edge: a face/edge-in-face pair on a
// specific occluder mesh, together with the solver's bookkeeping for it
// (spec.md §3 "SilhouetteEdge records"). Unlike the source material's
// "hyperplane index 0 means not yet lifted" sentinel, Lifted is an
// explicit flag so a genuine index 0 in the shared polyhedron is never
// confused with "not yet built".
type Edge struct {
	Face       int32
	EdgeInFace int8

	Lifted     bool
	Hyperplane polyhedron.Index

	Active bool
}

// Silhouette is one connected, flood-filled region of an occluder mesh
// lying between A and B.
type Silhouette struct {
	MeshID mesh.GeometryID
	Faces  []int32
	Edges  []*Edge

	availableCount int
	processed      []*Edge // stack discipline: push on negative-side descent, pop on ascent (spec.md §4.6)
}

// AvailableCount returns how many of this silhouette's edges are
// currently Active.
func (s *Silhouette) AvailableCount() int { return s.availableCount }

// Exhausted reports whether every edge of this silhouette has
// contributed to a split (available count is zero) and at least one has
// been processed — spec.md §3: "the silhouette is exhausted when this
// reaches zero and its processed-edge stack is non-empty".
func (s *Silhouette) Exhausted() bool {
	return s.availableCount == 0 && len(s.processed) > 0
}

// Deactivate marks e inactive (about to be used to split) and decrements
// the available-edge count.
func (s *Silhouette) Deactivate(e *Edge) {
	if e.Active {
		e.Active = false
		s.availableCount--
	}
}

// Reactivate marks e active again (on recursion unwind) and increments
// the available-edge count.
func (s *Silhouette) Reactivate(e *Edge) {
	if !e.Active {
		e.Active = true
		s.availableCount++
	}
}

// Push records e on the processed-edge stack (descent into the
// negative-side child, spec.md §4.6).
func (s *Silhouette) Push(e *Edge) {
	s.processed = append(s.processed, e)
}

// Pop removes the most recently pushed edge (ascent out of that child).
func (s *Silhouette) Pop() {
	if len(s.processed) > 0 {
		s.processed = s.processed[:len(s.processed)-1]
	}
}

// Processed returns the current processed-edge stack.
func (s *Silhouette) Processed() []*Edge { return s.processed }

// Container owns every Silhouette produced for one query, across all
// occluders (spec.md §5: "one query instance owns ... one silhouette
// container").
type Container struct {
	Silhouettes []*Silhouette
}

// ActiveEdge returns the first silhouette/edge pair with an Active edge,
// in Container order then Silhouette.Edges order — "the source uses
// first-fit" (spec.md §4.6 "Ordering and tie-breaks").
func (c *Container) ActiveEdge() (*Silhouette, *Edge, bool) {
	for _, s := range c.Silhouettes {
		for _, e := range s.Edges {
			if e.Active {
				return s, e, true
			}
		}
	}
	return nil, nil, false
}

// ExhaustedSilhouettes returns every silhouette in the container that is
// Exhausted, in Container order (spec.md §4.6 is_occluded iterates "For
// each silhouette whose available-edge count is zero").
func (c *Container) ExhaustedSilhouettes() []*Silhouette {
	var out []*Silhouette
	for _, s := range c.Silhouettes {
		if s.Exhausted() {
			out = append(out, s)
		}
	}
	return out
}
