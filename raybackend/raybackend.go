// Package raybackend implements C6: the ray-backend contract of spec.md
// §6 ("intersect(ray) -> bool filling ray.geometry_ids and
// ray.primitive_ids") and its brute-force reference implementation. An
// accelerated backend is only described by this same contract — no
// implementation is provided, matching spec.md §1's scoping of the
// "optional accelerated ray-tracing backend" as an external collaborator.
package raybackend

import (
	"github.com/dhaumont/visilib-sub000/internal/predicate"
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
)

// Hit identifies one triangle a ray crossed.
type Hit struct {
	GeometryID mesh.GeometryID
	FaceID     int32
}

// Backend is the ray-intersection oracle the solver casts rays through.
// Implementations must be safe for concurrent read-only Intersect calls
// across independent queries sharing one scene (spec.md §5).
type Backend[T snum.S[T]] interface {
	Intersect(ray vecmath.Ray[T]) []Hit
}

// BruteForce iterates every registered triangle and reports every hit in
// range, deduplicated by (GeometryID, FaceID) — the reference
// implementation spec.md §4.5/§6 describes. Triangles are tested both-
// sided unless CullBackFaces is set.
type BruteForce[T snum.S[T]] struct {
	scene         *mesh.OccluderSet[T]
	faces         map[mesh.GeometryID][]int32
	CullBackFaces bool
}

// NewBruteForce builds a brute-force backend restricted to the given
// per-geometry face lists (typically the faces covered by the active
// silhouettes, per spec.md C6: "casts a ray against all silhouette
// triangles"). A nil/empty faces map means "every face of every mesh in
// scene".
func NewBruteForce[T snum.S[T]](scene *mesh.OccluderSet[T], faces map[mesh.GeometryID][]int32) *BruteForce[T] {
	if len(faces) == 0 {
		faces = make(map[mesh.GeometryID][]int32)
		for _, entry := range scene.Meshes() {
			all := make([]int32, len(entry.Mesh.Faces))
			for i := range all {
				all[i] = int32(i)
			}
			faces[entry.ID] = all
		}
	}
	return &BruteForce[T]{scene: scene, faces: faces}
}

// Intersect casts ray against every registered triangle.
func (b *BruteForce[T]) Intersect(ray vecmath.Ray[T]) []Hit {
	var hits []Hit
	seen := make(map[Hit]bool)
	for gid, faceList := range b.faces {
		m := b.scene.Mesh(gid)
		if m == nil {
			continue
		}
		for _, fi := range faceList {
			tri := m.Triangle(int(fi))
			hit, ok := predicate.RayTriangleHits(ray, tri.A, tri.B, tri.C)
			if !ok {
				continue
			}
			if b.CullBackFaces && hit.BackFacing {
				continue
			}
			h := Hit{GeometryID: gid, FaceID: fi}
			if seen[h] {
				continue
			}
			seen[h] = true
			hits = append(hits, h)
		}
	}
	return hits
}
