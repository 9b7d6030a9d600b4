package finite

import (
	"math"
	"unsafe"
)

// Real is the constraint for the primitive types the wrappers can hold.
// If future releases of Go add new floating-point types, this constraint
// will be modified to include them.
type Real interface {
	~float32 | ~float64
}

// IsFinite reports whether v is neither NaN nor ±Inf.
//
// Widening a float32 to float64 is exact and preserves the NaN/Inf class,
// so one predicate serves both widths.
func IsFinite[F Real](v F) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NaN returns a quiet NaN of width F.
func NaN[F Real]() F {
	return F(math.NaN())
}

// Inf returns positive infinity of width F if sign >= 0, negative infinity
// if sign < 0.
func Inf[F Real](sign int) F {
	return F(math.Inf(sign))
}

// bitSize returns the width of F in bits (32 or 64).
// Resolved per instantiation; no reflection involved.
func bitSize[F Real]() int {
	var z F
	return int(unsafe.Sizeof(z)) * 8
}
