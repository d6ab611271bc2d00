package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhaumont/visilib-sub000/builder"
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
	"github.com/dhaumont/visilib-sub000/mesh"
	"github.com/dhaumont/visilib-sub000/plucker"
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

func TestSplitPartitionsVerticesByHyperplaneSign(t *testing.T) {
	av := square(0)
	bv := square(4)
	a := mesh.NewPolygon(av, bv)
	b := mesh.NewPolygon(bv, av)

	store := polyhedron.New[snum.Float64]()
	p, err := builder.Build(store, a, b, builder.Options{})
	require.NoError(t, err)

	// A hyperplane built from a line through the mid-plane, roughly
	// splitting the X-symmetric square pair's stabbing lines in two.
	h := plucker.FromPoints(vec(0, -1, 2), vec(0, 1, 2))
	k := int32(store.Len())
	store.Append(h, nil, false)

	kind, l, r := Split(p, h, k, false)
	require.Equal(t, Boundary, kind)
	require.NotNil(t, l)
	require.NotNil(t, r)
	assert.Greater(t, l.VertexCount(), 0)
	assert.Greater(t, r.VertexCount(), 0)

	for _, v := range l.Vertices() {
		assert.LessOrEqual(t, snum.Sign(h.Dot(store.Point(v))), 0)
	}
	for _, v := range r.Vertices() {
		assert.GreaterOrEqual(t, snum.Sign(h.Dot(store.Point(v))), 0)
	}
}

func TestSplitPassesThroughWhenEntirelyOneSide(t *testing.T) {
	av := square(0)
	bv := square(4)
	a := mesh.NewPolygon(av, bv)
	b := mesh.NewPolygon(bv, av)

	store := polyhedron.New[snum.Float64]()
	p, err := builder.Build(store, a, b, builder.Options{})
	require.NoError(t, err)

	// A hyperplane far outside the polytope's quadric-crossing range:
	// the line along Y through (100, 0, 2), which every A-B stabbing
	// line here sits strictly to one side of.
	h := plucker.FromPoints(vec(100, -1, 2), vec(100, 1, 2))
	k := int32(store.Len())
	store.Append(h, nil, false)

	kind, l, r := Split(p, h, k, false)
	assert.Contains(t, []Kind{Positive, Negative}, kind)
	assert.Nil(t, l)
	assert.Nil(t, r)
}
