package predicate

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Combinable is the shape Interpolate needs from a point type: it must
// support the convex-combination arithmetic (Add, Sub, Scale) that both
// vecmath.Vector3 and plucker.Point already provide, so one interpolation
// routine serves polygon clipping and Plücker-edge splitting alike
// (spec.md §4.1: "the single procedure used everywhere").
type Combinable[T snum.S[T], V any] interface {
	Add(V) V
	Sub(V) V
	Scale(T) V
}

// Interpolate computes the convex combination of v1, v2 implied by their
// signed distances offset1, offset2 to a cutting plane, following the
// Bajaj-Pascucci robust-interpolation discipline: only the magnitudes of
// the offsets are used, and the larger-magnitude offset is assigned as
// the weight of the vertex it is farthest from, so the result stays
// stable when one offset dominates the other. When either magnitude
// falls at or below ε, the two vertices are weighted equally.
func Interpolate[T snum.S[T], V Combinable[T, V]](offset1, offset2 T, v1, v2 V) V {
	eps := offset1.Eps()
	a1 := offset1.Abs()
	a2 := offset2.Abs()

	half := eps.FromFloat64(0.5)
	if a1.Cmp(eps) <= 0 || a2.Cmp(eps) <= 0 {
		return v1.Scale(half).Add(v2.Scale(half))
	}

	denom := a1.Add(a2)
	alpha := a2.Div(denom) // weight on v1, driven by the far (v2-side) offset
	beta := a1.Div(denom)  // weight on v2, driven by the far (v1-side) offset
	return v1.Scale(alpha).Add(v2.Scale(beta))
}
