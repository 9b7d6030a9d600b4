package finite

import "math"

// Ordering ranks under the total order: -Inf < finite < +Inf < NaN.
const (
	rankNegInf = iota
	rankFinite
	rankPosInf
	rankNaN
)

func rank(v float64) int {
	switch {
	case math.IsNaN(v):
		return rankNaN
	case math.IsInf(v, 1):
		return rankPosInf
	case math.IsInf(v, -1):
		return rankNegInf
	default:
		return rankFinite
	}
}

// CompareRaw orders two primitives under the strict total order
//
//	-Inf < all finite values (natural order) < +Inf < NaN
//
// returning -1 if a < b, 0 if a == b, +1 if a > b. NaN compares equal to
// NaN, which is what makes the order total; this is a deliberate departure
// from primitive comparison and exists purely to satisfy totality.
//
// The signature matches slices.SortFunc, so raw slices can be sorted with
// slices.SortFunc(vs, finite.CompareRaw[float64]).
func CompareRaw[F Real](a, b F) int {
	ra, rb := rank(float64(a)), rank(float64(b))
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra != rankFinite {
		// Same sentinel class: equal by definition.
		return 0
	}
	// Both finite: natural numeric order. Primitive comparison is safe
	// here, no NaN can reach this branch.
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// EqualRaw reports equality under the total order. NaN equals NaN.
func EqualRaw[F Real](a, b F) bool {
	return CompareRaw(a, b) == 0
}
