// Package mesh implements C4: indexed triangle meshes and the occluder
// set, including lazily-computed face adjacency and axis-aligned
// bounding boxes (spec.md §3 "Triangle mesh & occluder set").
package mesh

import (
	"sync"

	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// Mesh is an indexed triangle mesh with borrowed-memory semantics: the
// engine only ever reads Vertices/Faces for the duration of a query
// (spec.md §6, "Mesh description").
type Mesh[T snum.S[T]] struct {
	Vertices []vecmath.Vector3[T]
	Normals  []vecmath.Vector3[T] // optional, parallel to Vertices; may be nil
	Faces    [][3]int32

	adjOnce   sync.Once
	adjacency [][3]int32 // per face, per edge: neighbour face index or -1
	bounds    vecmath.Box3[T]
	boundsSet bool
}

// NewMesh builds a mesh from a flat vertex array and triangle index
// array, mirroring the borrowed-memory contract of spec.md §6.
func NewMesh[T snum.S[T]](vertices []vecmath.Vector3[T], faces [][3]int32) *Mesh[T] {
	return &Mesh[T]{Vertices: vertices, Faces: faces}
}

// Triangle returns the i-th face as a concrete Triangle.
func (m *Mesh[T]) Triangle(face int) vecmath.Triangle[T] {
	f := m.Faces[face]
	return vecmath.Triangle[T]{
		A: m.Vertices[f[0]],
		B: m.Vertices[f[1]],
		C: m.Vertices[f[2]],
	}
}

// Bounds returns the mesh's AABB, computed once and cached.
func (m *Mesh[T]) Bounds() vecmath.Box3[T] {
	if m.boundsSet {
		return m.bounds
	}
	if len(m.Vertices) == 0 {
		return m.bounds
	}
	box := vecmath.EmptyBox3(m.Vertices[0].X)
	for _, v := range m.Vertices {
		box = box.ExpandByPoint(v)
	}
	m.bounds = box
	m.boundsSet = true
	return box
}

// edgeKey identifies an undirected edge by its sorted vertex indices.
type edgeKey struct{ a, b int32 }

func newEdgeKey(a, b int32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Adjacency lazily computes, for each face and each of its three edges,
// the index of the neighbouring face sharing that edge, or -1 if the
// edge is a mesh boundary (spec.md §3: "on first use the engine lazily
// computes ... a face-adjacency array").
func (m *Mesh[T]) Adjacency() [][3]int32 {
	m.adjOnce.Do(func() {
		type occupant struct {
			face, edge int32
		}
		edges := make(map[edgeKey][]occupant, len(m.Faces)*3)
		for fi, f := range m.Faces {
			for e := 0; e < 3; e++ {
				v0, v1 := f[e], f[(e+1)%3]
				k := newEdgeKey(v0, v1)
				edges[k] = append(edges[k], occupant{int32(fi), int32(e)})
			}
		}

		adj := make([][3]int32, len(m.Faces))
		for i := range adj {
			adj[i] = [3]int32{-1, -1, -1}
		}
		for _, occ := range edges {
			if len(occ) != 2 {
				continue // boundary edge, or a non-manifold edge we treat as boundary
			}
			adj[occ[0].face][occ[0].edge] = occ[1].face
			adj[occ[1].face][occ[1].edge] = occ[0].face
		}
		m.adjacency = adj
	})
	return m.adjacency
}
