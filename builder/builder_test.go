package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/polyhedron"
)

func vec(x, y, z float64) vecmath.Vector3[snum.Float64] {
	var zero snum.Float64
	return vecmath.Vector3[snum.Float64]{X: zero.FromFloat64(x), Y: zero.FromFloat64(y), Z: zero.FromFloat64(z)}
}

func square(z float64) []vecmath.Vector3[snum.Float64] {
	return []vecmath.Vector3[snum.Float64]{
		vec(-0.5, -0.5, z), vec(0.5, -0.5, z), vec(0.5, 0.5, z), vec(-0.5, 0.5, z),
	}
}

func TestBuildProducesVertexPerSourcePair(t *testing.T) {
	av := square(0)
	bv := square(4)
	a := mesh.NewPolygon(av, bv)
	b := mesh.NewPolygon(bv, av)

	store := polyhedron.New[snum.Float64]()
	p, err := Build(store, a, b, Options{})
	require.NoError(t, err)
	assert.Equal(t, len(av)*len(bv), p.VertexCount())
}

func TestBuildRejectsCoincidentCentroids(t *testing.T) {
	av := square(0)
	a := mesh.NewPolygon(av, av)
	b := mesh.NewPolygon(av, av)

	store := polyhedron.New[snum.Float64]()
	_, err := Build(store, a, b, Options{})
	assert.Error(t, err)
}

func TestBuiltVerticesLieOnQuadric(t *testing.T) {
	av := square(0)
	bv := square(3)
	a := mesh.NewPolygon(av, bv)
	b := mesh.NewPolygon(bv, av)

	store := polyhedron.New[snum.Float64]()
	p, err := Build(store, a, b, Options{})
	require.NoError(t, err)
	for _, v := range p.Vertices() {
		assert.True(t, store.Point(v).IsReal(), "every A-vertex-to-B-vertex stabbing line is a genuine 3D line")
	}
}
