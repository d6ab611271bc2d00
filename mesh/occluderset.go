package mesh

import "github.com/dhaumont/visilib-sub000/internal/snum"

// OccluderSet is the read-only scene the engine queries against: a
// sequence of occluder meshes, each addressed by its GeometryID (spec.md
// §6 "opaque occluder set constructed by repeated add_occluder followed
// by prepare"). Built once per scene and shared read-only across queries
// (spec.md §5).
type OccluderSet[T snum.S[T]] struct {
	meshes   []*Mesh[T]
	prepared bool
}

// GeometryID addresses one occluder mesh within an OccluderSet.
type GeometryID int32

// NewOccluderSet returns an empty occluder set.
func NewOccluderSet[T snum.S[T]]() *OccluderSet[T] {
	return &OccluderSet[T]{}
}

// AddOccluder appends a mesh to the scene and returns its GeometryID.
func (s *OccluderSet[T]) AddOccluder(m *Mesh[T]) GeometryID {
	s.meshes = append(s.meshes, m)
	return GeometryID(len(s.meshes) - 1)
}

// Prepare finalises the scene: it forces each mesh's adjacency and
// bounds to be computed up front so concurrent read-only queries never
// race on the lazy caches (spec.md §5: "the ray backend must therefore
// be thread-safe for read-only queries").
func (s *OccluderSet[T]) Prepare() {
	for _, m := range s.meshes {
		m.Adjacency()
		m.Bounds()
	}
	s.prepared = true
}

// Prepared reports whether Prepare has been called.
func (s *OccluderSet[T]) Prepared() bool { return s.prepared }

// Mesh returns the mesh registered under id, or nil if id is out of range.
func (s *OccluderSet[T]) Mesh(id GeometryID) *Mesh[T] {
	if int(id) < 0 || int(id) >= len(s.meshes) {
		return nil
	}
	return s.meshes[id]
}

// Meshes returns all occluder meshes with their ids, in addition order.
func (s *OccluderSet[T]) Meshes() []struct {
	ID   GeometryID
	Mesh *Mesh[T]
} {
	out := make([]struct {
		ID   GeometryID
		Mesh *Mesh[T]
	}, len(s.meshes))
	for i, m := range s.meshes {
		out[i] = struct {
			ID   GeometryID
			Mesh *Mesh[T]
		}{GeometryID(i), m}
	}
	return out
}
