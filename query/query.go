// Package query implements the external interface of spec.md §6: the
// are_visible entry point, its Config record, and the scene/mesh
// description types callers build a query from.
package query

import (
	"github.com/dhaumont/visilib-sub000/builder"
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/internal/vislog"
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/polyhedron"
	"github.com/dhaumont/visilib-sub000/raybackend"
	"github.com/dhaumont/visilib-sub000/silhouette"
	"github.com/dhaumont/visilib-sub000/solver"
)

// Precision selects the scalar ring a query resolves over (spec.md §6
// "precision: {float, double, exact}").
type Precision int

const (
	Float Precision = iota
	Double
	ExactPrecision
)

// Result and Stats are re-exported from solver so callers of this
// package need not import it for them; a debug sink passed to AreVisible
// implements solver.DebugSink[T].
type Result = solver.Result

const (
	Unknown = solver.Unknown
	Visible = solver.Visible
	Hidden  = solver.Hidden
	Failure = solver.Failure
)

// Stats accumulates per-query counters (spec.md §5 "each query owns its
// own ... statistics collector").
type Stats = solver.Stats

// Config mirrors spec.md §6's are_visible configuration record.
type Config struct {
	SilhouetteOptimisation     bool
	HypersphereNormalisation   bool
	RepresentativeLineSampling bool
	Precision                  Precision
	DetectApertureOnly         bool
	UseAcceleratedRayBackend   bool
}

// MeshDesc is the borrowed mesh description of spec.md §6: a flat
// vertex array, a flat triangle index array, and an optional per-vertex
// normal array, all valid only for the duration of the AreVisible call
// that consumes them.
type MeshDesc struct {
	Vertices []float32 // 3*vertex_count
	Faces    []int32   // 3*face_count
	Normals  []float32 // optional, 3*vertex_count
}

// Scene is the opaque occluder set of spec.md §6: built by repeated
// AddOccluder calls followed by Prepare.
type Scene struct {
	meshes   []MeshDesc
	prepared bool
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

// AddOccluder appends one occluder mesh description to the scene.
func (s *Scene) AddOccluder(desc MeshDesc) { s.meshes = append(s.meshes, desc) }

// Prepare finalises the scene; it is a no-op placeholder here since the
// borrowed mesh descriptions are only converted into the engine's
// internal generic mesh representation once a precision is chosen,
// inside AreVisible.
func (s *Scene) Prepare() { s.prepared = true }

// AreVisible is the programmatic entry point of spec.md §6:
//
//	are_visible(scene, verticesA, verticesB, config, debug_sink?) -> VisibilityResult
//
// verticesA/B are packed float32[3*n] vertex rings. sink, if non-nil,
// must implement the solver.DebugSink[T] interface for the scalar type
// cfg.Precision selects (solver.DebugSink[snum.Float32] etc.); a sink of
// the wrong type is treated as absent rather than an error, since the
// debug sink never drives control flow (spec.md §6).
func AreVisible(scene *Scene, verticesA, verticesB []float32, cfg Config, sink any) (Result, Stats) {
	switch cfg.Precision {
	case Float:
		return run[snum.Float32](scene, verticesA, verticesB, cfg, sink)
	case ExactPrecision:
		return run[snum.Exact](scene, verticesA, verticesB, cfg, sink)
	default:
		return run[snum.Float64](scene, verticesA, verticesB, cfg, sink)
	}
}

func run[T snum.S[T]](scene *Scene, verticesA, verticesB []float32, cfg Config, rawSink any) (Result, Stats) {
	var stats Stats

	if len(verticesA) == 0 || len(verticesA)%3 != 0 || len(verticesB) == 0 || len(verticesB)%3 != 0 {
		vislog.Error("query: invalid source vertex array length",
			vislog.Int("len_a", len(verticesA)), vislog.Int("len_b", len(verticesB)))
		return Failure, stats
	}

	occluders := mesh.NewOccluderSet[T]()
	facesByID := make(map[mesh.GeometryID][]int32)
	for i, desc := range scene.meshes {
		if len(desc.Vertices)%3 != 0 || len(desc.Faces)%3 != 0 {
			vislog.Error("query: malformed mesh description", vislog.Int("occluder_index", i))
			return Failure, stats
		}
		verts := toVectors[T](desc.Vertices)
		faces := toFaces(desc.Faces)
		m := mesh.NewMesh[T](verts, faces)
		if len(desc.Normals) == len(desc.Vertices) {
			m.Normals = toVectors[T](desc.Normals)
		}
		id := occluders.AddOccluder(m)
		facesByID[id] = nil
	}
	occluders.Prepare()

	a := mesh.NewPolygon[T](toVectors[T](verticesA), toVectors[T](verticesB))
	b := mesh.NewPolygon[T](toVectors[T](verticesB), toVectors[T](verticesA))

	store := polyhedron.New[T]()
	initial, err := builder.Build(store, a, b, builder.Options{Normalize: cfg.HypersphereNormalisation})
	if err != nil {
		vislog.Info("query: building initial polytope failed", vislog.Err(err))
		return Failure, stats
	}

	container := &silhouette.Container{}
	for _, entry := range occluders.Meshes() {
		sils := silhouette.Extract[T](a, b, entry.ID, entry.Mesh, silhouette.Options{SilhouetteOptimisation: cfg.SilhouetteOptimisation})
		container.Silhouettes = append(container.Silhouettes, sils...)
		for _, s := range sils {
			facesByID[s.MeshID] = append(facesByID[s.MeshID], s.Faces...)
		}
	}

	if cfg.UseAcceleratedRayBackend {
		vislog.Warn("query: accelerated ray backend requested but not configured; using brute force")
	}
	backend := raybackend.NewBruteForce[T](occluders, facesByID)

	solverCfg := solver.Config{
		RepresentativeLineSampling: cfg.RepresentativeLineSampling,
		DetectApertureOnly:         cfg.DetectApertureOnly,
		Normalize:                  cfg.HypersphereNormalisation,
	}

	sink, _ := rawSink.(solver.DebugSink[T])
	s := solver.New[T](store, container, occluders, backend, a, b, solverCfg, &stats, sink)
	result := s.Resolve(initial)
	return result, stats
}

func toVectors[T snum.S[T]](flat []float32) []vecmath.Vector3[T] {
	var zero T
	out := make([]vecmath.Vector3[T], len(flat)/3)
	for i := range out {
		out[i] = vecmath.Vector3[T]{
			X: zero.FromFloat64(float64(flat[3*i])),
			Y: zero.FromFloat64(float64(flat[3*i+1])),
			Z: zero.FromFloat64(float64(flat[3*i+2])),
		}
	}
	return out
}

func toFaces(flat []int32) [][3]int32 {
	out := make([][3]int32, len(flat)/3)
	for i := range out {
		out[i] = [3]int32{flat[3*i], flat[3*i+1], flat[3*i+2]}
	}
	return out
}
