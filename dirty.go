package finite

// Dirty wraps a primitive of unknown status: it may be finite, NaN, or
// ±Inf. No invariant is maintained, so construction and arithmetic never
// fail. The only transition back to Clean is Sanitize.
type Dirty[F Real] struct {
	v F
}

// New wraps any primitive as Dirty. Always succeeds, no validation.
func New[F Real](v F) Dirty[F] {
	return Dirty[F]{v: v}
}

// Raw returns the wrapped primitive as-is, including non-finite values.
func (d Dirty[F]) Raw() F {
	return d.v
}

// Taint returns the receiver unchanged; Dirty has no guarantee to drop.
func (d Dirty[F]) Taint() Dirty[F] {
	return d
}

// Sanitize attempts to lift the value into Clean. This is the single
// runtime finiteness check in the package: on success the same value comes
// back wrapped in Clean; on failure the error carries the non-finite value
// (and its operation of origin, when NaN tracing recorded one).
func (d Dirty[F]) Sanitize() (Clean[F], error) {
	return Checked(d.v)
}

// Neg returns the negated value. Same-variant operation: Dirty in,
// Dirty out (negating a NaN is still a NaN).
func (d Dirty[F]) Neg() Dirty[F] {
	return Dirty[F]{v: -d.v}
}

// Abs returns the absolute value, staying Dirty.
func (d Dirty[F]) Abs() Dirty[F] {
	return Dirty[F]{v: absRaw(d.v)}
}

// Add delegates to primitive addition with no checks.
func (d Dirty[F]) Add(o Value[F]) Dirty[F] {
	return Dirty[F]{v: d.v + o.Raw()}
}

// Sub delegates to primitive subtraction with no checks.
func (d Dirty[F]) Sub(o Value[F]) Dirty[F] {
	return Dirty[F]{v: d.v - o.Raw()}
}

// Mul delegates to primitive multiplication with no checks.
func (d Dirty[F]) Mul(o Value[F]) Dirty[F] {
	return Dirty[F]{v: mintNaN("mul", d.v, o.Raw(), d.v*o.Raw())}
}

// Div delegates to primitive division with no checks.
func (d Dirty[F]) Div(o Value[F]) Dirty[F] {
	return Dirty[F]{v: mintNaN("div", d.v, o.Raw(), d.v/o.Raw())}
}

// Compare orders the receiver against o under the total order, which is
// defined for every value a Dirty can hold: -Inf < finite < +Inf < NaN.
func (d Dirty[F]) Compare(o Value[F]) int {
	return CompareRaw(d.v, o.Raw())
}

// Equal reports equality under the total order. A Dirty NaN equals another
// Dirty NaN, unlike primitive ==.
func (d Dirty[F]) Equal(o Value[F]) bool {
	return CompareRaw(d.v, o.Raw()) == 0
}
