// Package predicate holds the geometric decision procedures the engine
// consults instead of doing ad-hoc comparisons (spec.md §4.1, C1/C3):
// ray-triangle, plane clipping, the Bajaj-Pascucci style edge interpolant,
// and the Plücker-edge ∩ quadric root solver.
package predicate

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/internal/vecmath"
)

// RayTriangleHit reports a ray-triangle intersection's parametric
// distance and barycentric coordinates.
type RayTriangleHit[T snum.S[T]] struct {
	T          T
	U, V, W    T // barycentric weights for vertices A, B, C
	BackFacing bool
}

// RayTriangleHits implements the watertight ray-triangle test of Woop,
// Benthin & Wald: the ray's direction is permuted so its dominant axis is
// treated as z, triangle vertices are sheared into the ray's local frame,
// and the three barycentric numerators are checked for a consistent sign
// before any division (spec.md §4.1). Returns ok=false on a miss.
func RayTriangleHits[T snum.S[T]](ray vecmath.Ray[T], v0, v1, v2 vecmath.Vector3[T]) (hit RayTriangleHit[T], ok bool) {
	dir := ray.Direction
	kz := dir.MaxAxis()
	kx := (kz + 1) % 3
	ky := (kz + 2) % 3
	if snum.Sign(dir.Component(kz)) < 0 {
		kx, ky = ky, kx
	}

	one := dir.X.FromFloat64(1)
	dz := dir.Component(kz)
	sx := dir.Component(kx).Div(dz)
	sy := dir.Component(ky).Div(dz)
	sz := one.Div(dz)

	a := v0.Sub(ray.Origin)
	b := v1.Sub(ray.Origin)
	c := v2.Sub(ray.Origin)

	ax := a.Component(kx).Sub(sx.Mul(a.Component(kz)))
	ay := a.Component(ky).Sub(sy.Mul(a.Component(kz)))
	bx := b.Component(kx).Sub(sx.Mul(b.Component(kz)))
	by := b.Component(ky).Sub(sy.Mul(b.Component(kz)))
	cx := c.Component(kx).Sub(sx.Mul(c.Component(kz)))
	cy := c.Component(ky).Sub(sy.Mul(c.Component(kz)))

	u := cx.Mul(by).Sub(cy.Mul(bx))
	v := ax.Mul(cy).Sub(ay.Mul(cx))
	w := bx.Mul(ay).Sub(by.Mul(ax))

	su, sv, sw := snum.Sign(u), snum.Sign(v), snum.Sign(w)
	hasNeg := su < 0 || sv < 0 || sw < 0
	hasPos := su > 0 || sv > 0 || sw > 0
	if hasNeg && hasPos {
		return hit, false
	}

	det := u.Add(v).Add(w)
	if snum.Sign(det) == 0 {
		return hit, false
	}

	az := sz.Mul(a.Component(kz))
	bz := sz.Mul(b.Component(kz))
	cz := sz.Mul(c.Component(kz))
	tScaled := u.Mul(az).Add(v.Mul(bz)).Add(w.Mul(cz))

	rcpDet := one.Div(det)
	t := tScaled.Mul(rcpDet)

	if t.Cmp(ray.TNear) < 0 || t.Cmp(ray.TFar) > 0 {
		return hit, false
	}

	hit = RayTriangleHit[T]{
		T:          t,
		U:          u.Mul(rcpDet),
		V:          v.Mul(rcpDet),
		W:          w.Mul(rcpDet),
		BackFacing: snum.Sign(det) < 0,
	}
	return hit, true
}
