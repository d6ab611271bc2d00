package snum

import "github.com/chewxy/math32"

// Float32Eps is the structural tolerance used for the 32-bit instantiation
// (spec.md §3: "32-bit float, ε ≈ 1e-6").
const Float32Eps = 1e-6

// Float32 is the single-precision instantiation of S. Its transcendental
// operations (Sqrt, Abs) are delegated to chewxy/math32, the pack's
// drop-in float32 replacement for the standard math package, rather than
// hand-rolled float64-cast helpers.
type Float32 float32

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Mul(b Float32) Float32 { return a * b }
func (a Float32) Div(b Float32) Float32 { return a / b }
func (a Float32) Neg() Float32          { return -a }

func (a Float32) Abs() Float32 {
	return Float32(math32.Abs(float32(a)))
}

func (a Float32) Sqrt() Float32 {
	return Float32(math32.Sqrt(float32(a)))
}

func (a Float32) Cmp(b Float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Float32) Float64() float64 { return float64(a) }

func (a Float32) FromFloat64(f float64) Float32 { return Float32(f) }

func (a Float32) Eps() Float32 { return Float32Eps }
