package finite

import (
	"fmt"
	"math"
)

// Quiet-NaN payload packing. The mantissa of a quiet NaN has room for a
// small integer without disturbing the bits that make it a NaN; the tracing
// facility uses this to stamp minted NaNs with the id of the record
// describing their origin, and the ids survive being carried around as
// ordinary values.
//
// Payloads are stored offset by one so that a plain quiet NaN (payload bits
// all zero) is distinguishable from a packed payload of zero.

const (
	f32PayloadMask uint32 = 0x1f_ffff
	f32QuietNaN    uint32 = 0x7fc0_0000

	f64PayloadMask uint64 = 0x3_ffff_ffff_ffff
	f64QuietNaN    uint64 = 0x7ff8_0000_0000_0000
)

// MaxPayload returns the largest payload a NaN of width F can carry.
func MaxPayload[F Real]() uint64 {
	if bitSize[F]() == 32 {
		return uint64(f32PayloadMask) - 1
	}
	return f64PayloadMask - 1
}

// SetPayload returns a quiet NaN of width F carrying p in its mantissa.
// Panics if p exceeds MaxPayload[F](); ids handed out by the trace buffer
// always fit, so this guards direct callers only.
func SetPayload[F Real](p uint64) F {
	if p > MaxPayload[F]() {
		panic(fmt.Sprintf("finite: NaN payload %d exceeds capacity %d", p, MaxPayload[F]()))
	}
	if bitSize[F]() == 32 {
		return F(math.Float32frombits(uint32(p+1) | f32QuietNaN))
	}
	return F(math.Float64frombits((p + 1) | f64QuietNaN))
}

// Payload extracts the packed payload from v. Returns false when v is not a
// NaN or is a NaN with no payload.
func Payload[F Real](v F) (uint64, bool) {
	if !math.IsNaN(float64(v)) {
		return 0, false
	}
	var p uint64
	if bitSize[F]() == 32 {
		p = uint64(math.Float32bits(float32(v)) & f32PayloadMask)
	} else {
		p = math.Float64bits(float64(v)) & f64PayloadMask
	}
	if p == 0 {
		return 0, false
	}
	return p - 1, true
}

// IsPayloaded reports whether v is a NaN carrying a payload.
func IsPayloaded[F Real](v F) bool {
	_, ok := Payload(v)
	return ok
}
