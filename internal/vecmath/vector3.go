// Package vecmath provides the 3D vector, plane, triangle, ray and AABB
// types the engine is built from. It is adapted from the teacher's
// math32 package: same method names and shapes (Dot, Cross, Sub, Add,
// Length, Normalize, ...), generalised from a
// fixed float32 representation to any scalar satisfying snum.S so the
// whole geometric core can be instantiated at float32, float64, or
// arbitrary precision (spec.md §3).
package vecmath

import "github.com/dhaumont/visilib-sub000/internal/snum"

// Vector3 is a 3D vector or point with X, Y and Z components over scalar T.
type Vector3[T snum.S[T]] struct {
	X, Y, Z T
}

// NewVector3 builds a vector from its three components.
func NewVector3[T snum.S[T]](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Zero returns the additive identity of T, shaped from an existing sample
// value (generic code has no literal zero of an arbitrary T).
func Zero[T snum.S[T]](sample T) T {
	return sample.FromFloat64(0)
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// Dot returns the standard Euclidean dot product.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the vector cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vector3[T]) LengthSq() T {
	return v.Dot(v)
}

func (v Vector3[T]) Length() T {
	return v.LengthSq().Sqrt()
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Length()
	if snum.Sign(l) == 0 {
		return v
	}
	one := l.FromFloat64(1)
	return v.Scale(one.Div(l))
}

// AlmostEquals reports componentwise equality within ε(T).
func (v Vector3[T]) AlmostEquals(o Vector3[T]) bool {
	return snum.AlmostEqual(v.X, o.X) && snum.AlmostEqual(v.Y, o.Y) && snum.AlmostEqual(v.Z, o.Z)
}

// MaxAxis returns the index (0=X, 1=Y, 2=Z) of the component with the
// largest absolute value — used by plucker's BackProjectToSegment to pick
// the axis-aligned pair of planes to intersect a Plücker line against
// (spec.md §4.1 "Back-to-3D").
func (v Vector3[T]) MaxAxis() int {
	ax, ay, az := v.X.Abs(), v.Y.Abs(), v.Z.Abs()
	if ax.Cmp(ay) >= 0 && ax.Cmp(az) >= 0 {
		return 0
	}
	if ay.Cmp(az) >= 0 {
		return 1
	}
	return 2
}

// Component returns the i-th component (0=X, 1=Y, 2=Z).
func (v Vector3[T]) Component(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Lerp returns the point at parameter t along the segment v→o.
func (v Vector3[T]) Lerp(o Vector3[T], t T) Vector3[T] {
	return v.Add(o.Sub(v).Scale(t))
}
