package finite

// Clean wraps a primitive that is finite at all times. The invariant is
// established at construction and maintained by the downgrade rules: every
// operation that could produce a non-finite result returns Dirty instead of
// Clean, so a live Clean value never needs re-validation.
type Clean[F Real] struct {
	v F
}

// Unchecked wraps v as Clean without validating it.
//
// This is the escape hatch for values the caller has already proven finite
// (literals, table constants, values fresh out of Sanitize). Passing a NaN
// or ±Inf violates the Clean invariant and the behavior of every subsequent
// operation on the result is unspecified. This is a contract breach on the
// caller's side, not a recoverable error; when in doubt, use Checked.
func Unchecked[F Real](v F) Clean[F] {
	return Clean[F]{v: v}
}

// Checked wraps v as Clean after validating it, failing with an
// *InvalidValueError carrying v when it is NaN or ±Inf.
func Checked[F Real](v F) (Clean[F], error) {
	if !IsFinite(v) {
		return Clean[F]{}, newInvalidValue(v)
	}
	return Clean[F]{v: v}, nil
}

// Raw returns the wrapped primitive.
func (c Clean[F]) Raw() F {
	return c.v
}

// Taint drops the finiteness guarantee without touching the value.
func (c Clean[F]) Taint() Dirty[F] {
	return Dirty[F]{v: c.v}
}

// Neg returns the negated value. Negation of a finite value is finite, so
// the result stays Clean.
func (c Clean[F]) Neg() Clean[F] {
	return Clean[F]{v: -c.v}
}

// Abs returns the absolute value. Finite in, finite out: stays Clean.
func (c Clean[F]) Abs() Clean[F] {
	return Clean[F]{v: absRaw(c.v)}
}

// Add returns the sum as Dirty: the sum of two finite values can overflow
// to ±Inf, so the result cannot keep the Clean guarantee.
func (c Clean[F]) Add(o Value[F]) Dirty[F] {
	return Dirty[F]{v: c.v + o.Raw()}
}

// Sub returns the difference as Dirty (can overflow).
func (c Clean[F]) Sub(o Value[F]) Dirty[F] {
	return Dirty[F]{v: c.v - o.Raw()}
}

// Mul returns the product as Dirty (can overflow).
func (c Clean[F]) Mul(o Value[F]) Dirty[F] {
	return Dirty[F]{v: mintNaN("mul", c.v, o.Raw(), c.v*o.Raw())}
}

// Div returns the quotient as Dirty: division can overflow, and 0/0 is NaN.
func (c Clean[F]) Div(o Value[F]) Dirty[F] {
	return Dirty[F]{v: mintNaN("div", c.v, o.Raw(), c.v/o.Raw())}
}

// Compare orders the receiver against o under the total order.
// With a Clean receiver and a Clean operand this coincides with natural
// numeric order, since neither side can hold a sentinel.
func (c Clean[F]) Compare(o Value[F]) int {
	return CompareRaw(c.v, o.Raw())
}

// Equal reports equality under the total order.
func (c Clean[F]) Equal(o Value[F]) bool {
	return CompareRaw(c.v, o.Raw()) == 0
}
