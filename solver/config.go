package solver

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
)

// Result is the four-valued outcome of a visibility query (spec.md §1).
type Result int

const (
	Unknown Result = iota
	Visible
	Hidden
	Failure
)

func (r Result) String() string {
	switch r {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// MaxDepth bounds the resolve_internal recursion; exceeding it is a
// fatal failure, never a silent truncation (spec.md §4.6, §7).
const MaxDepth = 2000

// Config controls the optional behaviours spec.md §6 lists for
// are_visible. RepresentativeLineSampling and Normalize feed the solver
// directly; SilhouetteOptimisation and precision selection are consumed
// one layer up (silhouette extraction, scalar instantiation).
type Config struct {
	RepresentativeLineSampling bool
	DetectApertureOnly         bool
	Normalize                  bool
}

// Stats accumulates the counters a caller can use to judge how hard a
// query worked, without slowing down the release build's hot path.
type Stats struct {
	SplitCount      int
	RaysCast        int
	AperturesFound  int
	MaxDepthReached int
}

// DebugSink collects visual-debug traces: stabbing lines found visible,
// extremal stabbing lines, sampling lines cast as rays, and geometry
// pruned from consideration (spec.md §6 "debug_sink: ... add_* methods").
// It never drives control flow — a nil sink is always valid to pass.
type DebugSink[T snum.S[T]] interface {
	AddStabbingLine(p0, p1 vecmath.Vector3[T])
	AddExtremalStabbingLine(p0, p1 vecmath.Vector3[T])
	AddSamplingLine(p0, p1 vecmath.Vector3[T])
	AddRemovedEdge(p0, p1 vecmath.Vector3[T])
	AddRemovedTriangle(id mesh.GeometryID, faceID int32)
}
