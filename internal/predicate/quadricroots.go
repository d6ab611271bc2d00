package predicate

import (
	"github.com/dhaumont/visilib-sub000/internal/snum"
	"github.com/dhaumont/visilib-sub000/plucker"
)

// newtonTolerance and newtonMaxIter bound the Newton-Raphson refinement
// applied to each quadric root under approximate arithmetic (spec.md
// §4.1: "apply one Newton-Raphson refinement (≤20 iterations, tolerance
// 1e-18)").
const (
	newtonTolerance = 1e-18
	newtonMaxIter   = 20
)

// QuadricRoots finds where the Plücker edge from v1 to v2 crosses the
// Plücker quadric, per spec.md §4.1. f(t) = (v1+t(v2-v1))·(v1+t(v2-v1))
// = a t² + 2 b t + c is evaluated with the permuted Plücker dot, not the
// Euclidean one. Returns zero, one or two intersection Plücker points,
// with t kept only inside [-ε, 1+ε]; when ε(T) is non-zero each kept
// root is refined by refineRoot's Newton-Raphson iteration. If both
// endpoints already lie on the quadric, they are the roots (t = 0 and
// t = 1) and both are returned directly.
func QuadricRoots[T snum.S[T]](v1, v2 plucker.Point[T]) []plucker.Point[T] {
	if v1.IsReal() && v2.IsReal() {
		return []plucker.Point[T]{v1, v2}
	}

	f := v2.Sub(v1)
	a := f.Dot(f)
	b := f.Dot(v1)
	c := v1.Dot(v1)

	var zero T
	zero = a.FromFloat64(0)
	one := a.FromFloat64(1)
	eps := a.Eps()

	var ts []T
	switch {
	case snum.Sign(a) == 0 && snum.Sign(b) == 0:
		return nil
	case snum.Sign(a) == 0:
		ts = []T{zero.Sub(c).Div(b.Mul(a.FromFloat64(2)))}
	default:
		disc := b.Mul(b).Sub(a.Mul(c))
		switch snum.Sign(disc) {
		case -1:
			return nil
		case 0:
			ts = []T{b.Neg().Div(a)}
		default:
			sq := disc.Sqrt()
			ts = []T{b.Neg().Add(sq).Div(a), b.Neg().Sub(sq).Div(a)}
		}
	}

	lo := zero.Sub(eps)
	hi := one.Add(eps)

	out := make([]plucker.Point[T], 0, len(ts))
	for _, t := range ts {
		if t.Cmp(lo) < 0 || t.Cmp(hi) > 0 {
			continue
		}
		if eps.Cmp(zero) != 0 {
			t = refineRoot(a, b, c, t)
		}
		out = append(out, v1.Add(f.Scale(t)))
	}
	return out
}

// refineRoot runs up to newtonMaxIter Newton-Raphson steps on
// f(t) = a t² + 2 b t + c to drive f(t) towards zero.
func refineRoot[T snum.S[T]](a, b, c, t T) T {
	two := a.FromFloat64(2)
	tol := a.FromFloat64(newtonTolerance)
	for i := 0; i < newtonMaxIter; i++ {
		ft := a.Mul(t).Mul(t).Add(two.Mul(b).Mul(t)).Add(c)
		if ft.Abs().Cmp(tol) <= 0 {
			break
		}
		dft := two.Mul(a).Mul(t).Add(two.Mul(b))
		if snum.Sign(dft) == 0 {
			break
		}
		t = t.Sub(ft.Div(dft))
	}
	return t
}
