package vecmath

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Box3 is an axis-aligned bounding box. Adapted from math32.Box3.
type Box3[T snum.S[T]] struct {
	Min, Max Vector3[T]
}

// EmptyBox3 returns an inverted box (Min > Max) ready for ExpandByPoint.
func EmptyBox3[T snum.S[T]](sample T) Box3[T] {
	inf := sample.FromFloat64(1e300)
	return Box3[T]{
		Min: Vector3[T]{inf, inf, inf},
		Max: Vector3[T]{inf.Neg(), inf.Neg(), inf.Neg()},
	}
}

// ExpandByPoint grows the box, if needed, to contain p.
func (b Box3[T]) ExpandByPoint(p Vector3[T]) Box3[T] {
	min := Vector3[T]{minT(b.Min.X, p.X), minT(b.Min.Y, p.Y), minT(b.Min.Z, p.Z)}
	max := Vector3[T]{maxT(b.Max.X, p.X), maxT(b.Max.Y, p.Y), maxT(b.Max.Z, p.Z)}
	return Box3[T]{Min: min, Max: max}
}

// ExpandByBox3 grows the box to contain other.
func (b Box3[T]) ExpandByBox3(other Box3[T]) Box3[T] {
	return b.ExpandByPoint(other.Min).ExpandByPoint(other.Max)
}

func minT[T snum.S[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxT[T snum.S[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// IntersectsRay applies the standard slab test (spec.md §4.1 ray_aabb_hits).
func (b Box3[T]) IntersectsRay(origin, dir Vector3[T], tNear, tFar T) bool {
	tmin, tmax := tNear, tFar
	axes := [3]struct{ o, d, lo, hi T }{
		{origin.X, dir.X, b.Min.X, b.Max.X},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y},
		{origin.Z, dir.Z, b.Min.Z, b.Max.Z},
	}
	for _, ax := range axes {
		if snum.Sign(ax.d) == 0 {
			if ax.o.Cmp(ax.lo) < 0 || ax.o.Cmp(ax.hi) > 0 {
				return false
			}
			continue
		}
		inv := ax.o.FromFloat64(1).Div(ax.d)
		t1 := ax.lo.Sub(ax.o).Mul(inv)
		t2 := ax.hi.Sub(ax.o).Mul(inv)
		if t1.Cmp(t2) > 0 {
			t1, t2 = t2, t1
		}
		if t1.Cmp(tmin) > 0 {
			tmin = t1
		}
		if t2.Cmp(tmax) < 0 {
			tmax = t2
		}
		if tmin.Cmp(tmax) > 0 {
			return false
		}
	}
	return true
}
