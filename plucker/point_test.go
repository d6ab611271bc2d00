package plucker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

func vec(x, y, z float64) vecmath.Vector3[snum.Float64] {
	var zero snum.Float64
	return vecmath.Vector3[snum.Float64]{X: zero.FromFloat64(x), Y: zero.FromFloat64(y), Z: zero.FromFloat64(z)}
}

func TestFromPointsIsReal(t *testing.T) {
	p := FromPoints(vec(0, 0, 0), vec(1, 2, 3))
	assert.True(t, p.IsReal(), "a line built from two points must satisfy d·l=0")
}

func TestDotReciprocity(t *testing.T) {
	l1 := FromPoints(vec(0, 0, 0), vec(1, 0, 0))
	l2 := FromPoints(vec(0, 0, 1), vec(0, 1, 1))
	assert.InDelta(t, l1.Dot(l2).Float64(), l2.Dot(l1).Float64(), 1e-9)
}

func TestDotZeroForIntersectingLines(t *testing.T) {
	l1 := FromPoints(vec(0, 0, 0), vec(1, 0, 0))
	l2 := FromPoints(vec(0, 0, 0), vec(0, 1, 0))
	assert.InDelta(t, 0, l1.Dot(l2).Float64(), 1e-9, "lines sharing a point must have zero Plücker dot")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := FromPoints(vec(1, 2, 3), vec(-4, 5, 0.5))
	once := p.Normalize()
	twice := once.Normalize()
	assert.InDelta(t, once.D.X.Float64(), twice.D.X.Float64(), 1e-9)
	assert.InDelta(t, once.L.Z.Float64(), twice.L.Z.Float64(), 1e-9)
	assert.InDelta(t, 1.0, once.Norm().Float64(), 1e-9)
}

func TestNegFlipsOrientationNotQuadricMembership(t *testing.T) {
	p := FromPoints(vec(0, 0, 0), vec(2, 1, -1))
	assert.True(t, p.Neg().IsReal())
	assert.InDelta(t, -p.Dot(p).Float64(), p.Neg().Dot(p).Float64(), 1e-9)
}
