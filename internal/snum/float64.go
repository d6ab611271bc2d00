package snum

import "math"

// Float64Eps is the structural tolerance used for the 64-bit instantiation
// (spec.md §3: "64-bit float, ε ≈ 1e-12"). This is the engine's default
// precision.
const Float64Eps = 1e-12

// Float64 is the double-precision instantiation of S, built directly on
// the standard library: no third-party float64 math library appears
// anywhere in the retrieved pack, so stdlib math is the grounded choice
// here (see SPEC_FULL.md §3).
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }
func (a Float64) Neg() Float64          { return -a }

func (a Float64) Abs() Float64 {
	return Float64(math.Abs(float64(a)))
}

func (a Float64) Sqrt() Float64 {
	return Float64(math.Sqrt(float64(a)))
}

func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Float64) Float64() float64 { return float64(a) }

func (a Float64) FromFloat64(f float64) Float64 { return Float64(f) }

func (a Float64) Eps() Float64 { return Float64Eps }
