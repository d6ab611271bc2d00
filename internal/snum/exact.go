package snum

import "math/big"

// exactSqrtBits is the working precision used to approximate a square root
// of an exact rational. There is no way to represent most square roots as
// a big.Rat exactly, so this instantiation is "exact" for +,−,·,/,abs and
// comparison, and high-precision (not algebraically exact) for the one √
// the quadric-root solver needs — see SPEC_FULL.md §8.
const exactSqrtBits = 200

// Exact is the arbitrary-precision instantiation of S, built on
// math/big. No ecosystem exact-rational or interval-arithmetic geometry
// library appears in the retrieved pack, so the standard library's
// big.Rat/big.Float are the grounded choice (SPEC_FULL.md §3).
type Exact struct {
	r *big.Rat
}

// NewExact wraps a big.Rat as an Exact scalar. A nil r is treated as zero.
func NewExact(r *big.Rat) Exact {
	if r == nil {
		r = new(big.Rat)
	}
	return Exact{r: r}
}

// ExactFromInt64 builds an Exact scalar from an integer numerator/denominator.
func ExactFromInt64(num, den int64) Exact {
	return Exact{r: big.NewRat(num, den)}
}

func (a Exact) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

func (a Exact) Add(b Exact) Exact {
	return Exact{r: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Exact) Sub(b Exact) Exact {
	return Exact{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Exact) Mul(b Exact) Exact {
	return Exact{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

func (a Exact) Div(b Exact) Exact {
	return Exact{r: new(big.Rat).Quo(a.rat(), b.rat())}
}

func (a Exact) Neg() Exact {
	return Exact{r: new(big.Rat).Neg(a.rat())}
}

func (a Exact) Abs() Exact {
	return Exact{r: new(big.Rat).Abs(a.rat())}
}

// Sqrt approximates the square root at exactSqrtBits of precision via
// big.Float, then converts the result back to a rational so downstream
// code keeps operating on Exact values.
func (a Exact) Sqrt() Exact {
	ar := a.rat()
	if ar.Sign() <= 0 {
		return Exact{r: new(big.Rat)}
	}
	f := new(big.Float).SetPrec(exactSqrtBits).SetRat(ar)
	root := new(big.Float).SetPrec(exactSqrtBits).Sqrt(f)
	result, _ := root.Rat(nil)
	return Exact{r: result}
}

func (a Exact) Cmp(b Exact) int {
	return a.rat().Cmp(b.rat())
}

func (a Exact) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

func (a Exact) FromFloat64(f float64) Exact {
	r := new(big.Rat)
	r.SetFloat64(f)
	return Exact{r: r}
}

// Eps is always exactly zero: the exact instantiation has no structural
// tolerance, per spec.md §3 ("an optional exact model with zero tolerance
// semantics").
func (a Exact) Eps() Exact {
	return Exact{r: new(big.Rat)}
}

func (a Exact) String() string {
	return a.rat().RatString()
}
