package finite

import "math"

// Extended operations, split the same way as the basic arithmetic: an
// operation whose output range stays inside the finite reals for finite
// inputs keeps the receiver's variant; anything that can escape (overflow,
// domain errors like sqrt of a negative) returns Dirty.
//
// float32 instantiations compute through float64. Widening is exact, and
// the variant-preserving operations below map finite float32 values to
// results exactly representable in float32 (floor/ceil/round/trunc of a
// finite value never grow magnitude past the next integer).

func absRaw[F Real](v F) F {
	return F(math.Abs(float64(v)))
}

// Floor rounds toward negative infinity. Finite-preserving: stays Clean.
func (c Clean[F]) Floor() Clean[F] {
	return Clean[F]{v: F(math.Floor(float64(c.v)))}
}

// Ceil rounds toward positive infinity. Stays Clean.
func (c Clean[F]) Ceil() Clean[F] {
	return Clean[F]{v: F(math.Ceil(float64(c.v)))}
}

// Round rounds half away from zero. Stays Clean.
func (c Clean[F]) Round() Clean[F] {
	return Clean[F]{v: F(math.Round(float64(c.v)))}
}

// Trunc rounds toward zero. Stays Clean.
func (c Clean[F]) Trunc() Clean[F] {
	return Clean[F]{v: F(math.Trunc(float64(c.v)))}
}

// Fract returns the fractional part, v - Trunc(v). Stays Clean.
func (c Clean[F]) Fract() Clean[F] {
	f := float64(c.v)
	return Clean[F]{v: F(f - math.Trunc(f))}
}

// Signum returns -1, -0, +0 or +1 according to the sign of the value.
// Stays Clean.
func (c Clean[F]) Signum() Clean[F] {
	return Clean[F]{v: signumRaw(c.v)}
}

// Sqrt returns the square root as Dirty: a negative operand yields NaN.
func (c Clean[F]) Sqrt() Dirty[F] {
	return Dirty[F]{v: F(math.Sqrt(float64(c.v)))}
}

// Exp returns e**v as Dirty: large operands overflow to +Inf.
func (c Clean[F]) Exp() Dirty[F] {
	return Dirty[F]{v: F(math.Exp(float64(c.v)))}
}

// Log returns the natural logarithm as Dirty: zero yields -Inf and
// negative operands yield NaN.
func (c Clean[F]) Log() Dirty[F] {
	return Dirty[F]{v: F(math.Log(float64(c.v)))}
}

// Pow returns c**o as Dirty: the result can overflow or be NaN.
func (c Clean[F]) Pow(o Value[F]) Dirty[F] {
	return Dirty[F]{v: F(math.Pow(float64(c.v), float64(o.Raw())))}
}

// Recip returns 1/v as Dirty: the reciprocal of zero is ±Inf.
func (c Clean[F]) Recip() Dirty[F] {
	return Dirty[F]{v: F(1) / c.v}
}

// MulAdd returns c*a + b as Dirty (can overflow), computed with a single
// rounding as math.FMA does.
func (c Clean[F]) MulAdd(a, b Value[F]) Dirty[F] {
	return Dirty[F]{v: F(math.FMA(float64(c.v), float64(a.Raw()), float64(b.Raw())))}
}

// The same set on Dirty. All stay Dirty; the variant-preserving subset
// preserves nothing here because there is no guarantee to preserve.

// Floor rounds toward negative infinity.
func (d Dirty[F]) Floor() Dirty[F] {
	return Dirty[F]{v: F(math.Floor(float64(d.v)))}
}

// Ceil rounds toward positive infinity.
func (d Dirty[F]) Ceil() Dirty[F] {
	return Dirty[F]{v: F(math.Ceil(float64(d.v)))}
}

// Round rounds half away from zero.
func (d Dirty[F]) Round() Dirty[F] {
	return Dirty[F]{v: F(math.Round(float64(d.v)))}
}

// Trunc rounds toward zero.
func (d Dirty[F]) Trunc() Dirty[F] {
	return Dirty[F]{v: F(math.Trunc(float64(d.v)))}
}

// Fract returns the fractional part.
func (d Dirty[F]) Fract() Dirty[F] {
	f := float64(d.v)
	return Dirty[F]{v: F(f - math.Trunc(f))}
}

// Signum returns -1, -0, +0, +1, or NaN for a NaN operand.
func (d Dirty[F]) Signum() Dirty[F] {
	return Dirty[F]{v: signumRaw(d.v)}
}

// Sqrt returns the square root.
func (d Dirty[F]) Sqrt() Dirty[F] {
	return Dirty[F]{v: F(math.Sqrt(float64(d.v)))}
}

// Exp returns e**v.
func (d Dirty[F]) Exp() Dirty[F] {
	return Dirty[F]{v: F(math.Exp(float64(d.v)))}
}

// Log returns the natural logarithm.
func (d Dirty[F]) Log() Dirty[F] {
	return Dirty[F]{v: F(math.Log(float64(d.v)))}
}

// Pow returns d**o.
func (d Dirty[F]) Pow(o Value[F]) Dirty[F] {
	return Dirty[F]{v: F(math.Pow(float64(d.v), float64(o.Raw())))}
}

// Recip returns 1/v.
func (d Dirty[F]) Recip() Dirty[F] {
	return Dirty[F]{v: F(1) / d.v}
}

// MulAdd returns d*a + b with a single rounding.
func (d Dirty[F]) MulAdd(a, b Value[F]) Dirty[F] {
	return Dirty[F]{v: F(math.FMA(float64(d.v), float64(a.Raw()), float64(b.Raw())))}
}

func signumRaw[F Real](v F) F {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return v
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		// Preserve the sign of zero (and of ±Inf handled above by >/<).
		return F(math.Copysign(0, f))
	}
}
