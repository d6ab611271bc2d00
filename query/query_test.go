package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(z float32) []float32 {
	return []float32{
		-0.5, -0.5, z,
		0.5, -0.5, z,
		0.5, 0.5, z,
		-0.5, 0.5, z,
	}
}

func quad(ax, ay, bx, by, cx, cy, dx, dy, z float32) ([]float32, []int32) {
	return []float32{ax, ay, z, bx, by, z, cx, cy, z, dx, dy, z}, []int32{0, 1, 2, 0, 2, 3}
}

func slab(z float32) MeshDesc {
	v, f := quad(-2, -2, 2, -2, 2, 2, -2, 2, z)
	return MeshDesc{Vertices: v, Faces: f}
}

// apertureSlab returns a slab at z with a square hole around the origin,
// built as 4 trapezoid strips so the aperture lets a straight stabbing
// line through its middle.
func apertureSlab(z, outer, inner float32) MeshDesc {
	var v []float32
	var f []int32
	add := func(ax, ay, bx, by, cx, cy, dx, dy float32) {
		base := int32(len(v) / 3)
		v = append(v, ax, ay, z, bx, by, z, cx, cy, z, dx, dy, z)
		f = append(f, base, base+1, base+2, base, base+2, base+3)
	}
	add(-outer, inner, outer, inner, outer, outer, -outer, outer)
	add(-outer, -outer, outer, -outer, outer, -inner, -outer, -inner)
	add(-outer, -inner, -inner, -inner, -inner, inner, -outer, inner)
	add(inner, -inner, outer, -inner, outer, inner, inner, inner)
	return MeshDesc{Vertices: v, Faces: f}
}

func defaultConfig() Config {
	return Config{
		SilhouetteOptimisation:     true,
		HypersphereNormalisation:   true,
		RepresentativeLineSampling: false,
		Precision:                  Double,
	}
}

// S1: two sources face each other in an empty scene: visible.
func TestEmptySceneIsVisible(t *testing.T) {
	scene := NewScene()
	scene.Prepare()
	result, _ := AreVisible(scene, square(0), square(4), defaultConfig(), nil)
	assert.Equal(t, Visible, result)
}

// S2: a full slab between the sources blocks every stabbing line: hidden.
func TestFullSlabIsHidden(t *testing.T) {
	scene := NewScene()
	scene.AddOccluder(slab(2))
	scene.Prepare()
	result, _ := AreVisible(scene, square(0), square(4), defaultConfig(), nil)
	assert.Equal(t, Hidden, result)
}

// S3: the slab has a hole large enough to pass an unoccluded line
// through: visible.
func TestApertureInSlabIsVisible(t *testing.T) {
	scene := NewScene()
	scene.AddOccluder(apertureSlab(2, 2, 0.6))
	scene.Prepare()
	result, _ := AreVisible(scene, square(0), square(4), defaultConfig(), nil)
	assert.Equal(t, Visible, result)
}

// S4: degenerate point-to-point sources through the same hole: visible.
func TestPointToPointThroughHoleIsVisible(t *testing.T) {
	scene := NewScene()
	scene.AddOccluder(apertureSlab(2, 2, 0.6))
	scene.Prepare()
	a := []float32{0, 0, 0}
	b := []float32{0, 0, 4}
	result, _ := AreVisible(scene, a, b, defaultConfig(), nil)
	assert.Equal(t, Visible, result)
}

// S5: two parallel segments (degenerate 2-vertex sources) with no
// occluder: visible.
func TestSegmentToSegmentNoOccluderIsVisible(t *testing.T) {
	scene := NewScene()
	scene.Prepare()
	a := []float32{-0.5, 0, 0, 0.5, 0, 0}
	b := []float32{-0.5, 0, 4, 0.5, 0, 4}
	result, _ := AreVisible(scene, a, b, defaultConfig(), nil)
	assert.Equal(t, Visible, result)
}

// S6: coplanar, overlapping sources have no well-defined stabbing
// geometry: failure.
func TestCoplanarOverlappingSourcesIsFailure(t *testing.T) {
	scene := NewScene()
	scene.Prepare()
	a := square(0)
	b := square(0)
	result, _ := AreVisible(scene, a, b, defaultConfig(), nil)
	assert.Equal(t, Failure, result)
}

func TestInvalidVertexArrayIsFailure(t *testing.T) {
	scene := NewScene()
	scene.Prepare()
	result, _ := AreVisible(scene, []float32{0, 0}, square(4), defaultConfig(), nil)
	assert.Equal(t, Failure, result)
}

func TestRepresentativeLineSamplingAgreesWithExtremalSampling(t *testing.T) {
	scene := NewScene()
	scene.AddOccluder(apertureSlab(2, 2, 0.6))
	scene.Prepare()

	cfg := defaultConfig()
	cfg.RepresentativeLineSampling = true
	result, stats := AreVisible(scene, square(0), square(4), cfg, nil)
	require.Equal(t, Visible, result)
	assert.GreaterOrEqual(t, stats.RaysCast, 1)
}
