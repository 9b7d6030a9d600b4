package finite

// Value is the operation contract shared by Clean and Dirty. Only those two
// types implement it; the interface exists as the compile-time statement of
// the shared operation set, and as the operand surface for binary operations
// so that variants can be mixed freely.
//
// Binary arithmetic always returns Dirty, whatever the operand variants:
// even two finite operands can overflow (Add/Sub/Mul) or divide to NaN
// (0/0), so no binary result may keep the Clean guarantee. Negation and
// absolute value ARE finite-preserving, but they return the receiver's own
// variant and Go interfaces cannot express self-typed returns, so Neg and
// Abs live on the concrete types only.
//
// Compare and Equal use the package's total order (see CompareRaw), not
// primitive comparison.
type Value[F Real] interface {
	// Raw returns the wrapped primitive unchanged. Never fails, never
	// validates: a Dirty NaN comes back as a NaN.
	Raw() F

	// Taint forgets the finiteness guarantee, if any.
	Taint() Dirty[F]

	Add(Value[F]) Dirty[F]
	Sub(Value[F]) Dirty[F]
	Mul(Value[F]) Dirty[F]
	Div(Value[F]) Dirty[F]

	// Compare orders the receiver against o under the total order,
	// returning -1, 0 or +1.
	Compare(Value[F]) int

	// Equal reports equality under the total order. Unlike primitive ==,
	// NaN equals NaN.
	Equal(Value[F]) bool
}

// Both variants satisfy the contract (compile-time check).
var (
	_ Value[float64] = Clean[float64]{}
	_ Value[float64] = Dirty[float64]{}
	_ Value[float32] = Clean[float32]{}
	_ Value[float32] = Dirty[float32]{}
)

// Shorthand aliases for the two common instantiations, mirroring the widths
// the package is expected to wrap.
type (
	F64      = Clean[float64]
	DirtyF64 = Dirty[float64]
	F32      = Clean[float32]
	DirtyF32 = Dirty[float32]
)
