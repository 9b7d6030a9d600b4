package finite

import (
	"math"
	"strings"
	"sync"
	"sync/atomic"
)

// NaN provenance tracing. Off by default.
//
// When enabled, the operations that can mint a NaN from non-NaN operands
// (Mul and Div) record the operation and operands in a process-wide buffer
// and return a NaN stamped with the record's id (see nanpack.go). When such
// a NaN later fails Sanitize or Checked, the record is recovered and
// attached to the InvalidValueError as Origin, answering "where did this
// NaN come from" without carrying extra state in the wrappers themselves.
//
// Tracing changes only the mantissa bits of minted NaNs, never whether a
// value is a NaN, so enabling it cannot alter control flow.

// TraceRecord describes the operation that minted a NaN.
type TraceRecord struct {
	// Op names the operation ("mul", "div").
	Op string

	// Operands holds the operand values, widened to float64.
	Operands []float64
}

// String renders the record as a call, e.g. "div(0, 0)".
func (r TraceRecord) String() string {
	parts := make([]string, len(r.Operands))
	for i, v := range r.Operands {
		parts[i] = formatFloat(v, 64)
	}
	return r.Op + "(" + strings.Join(parts, ", ") + ")"
}

// traceCapacity bounds the buffer; ids wrap and overwrite the oldest
// records. Must stay below MaxPayload for the narrower width.
const traceCapacity = 1 << 16

type traceBuffer struct {
	mu      sync.Mutex
	next    uint64
	records map[uint64]TraceRecord
}

var (
	tracingOn atomic.Bool
	nanTrace  = traceBuffer{records: make(map[uint64]TraceRecord)}
)

// SetTracing enables or disables NaN provenance recording. Safe to call
// concurrently with arithmetic.
func SetTracing(on bool) {
	tracingOn.Store(on)
}

// TracingEnabled reports whether provenance recording is on.
func TracingEnabled() bool {
	return tracingOn.Load()
}

func (b *traceBuffer) insert(rec TraceRecord) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next % traceCapacity
	b.next++
	b.records[id] = rec
	return id
}

func (b *traceBuffer) take(id uint64) (TraceRecord, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.records[id]
	if ok {
		delete(b.records, id)
	}
	return rec, ok
}

// mintNaN stamps a freshly minted NaN result with a trace payload when
// tracing is enabled. A payloaded operand propagates unchanged, so the
// original provenance survives chains of arithmetic. Non-NaN results pass
// through untouched.
func mintNaN[F Real](op string, a, b, result F) F {
	if !tracingOn.Load() {
		return result
	}
	if !math.IsNaN(float64(result)) {
		return result
	}
	if IsPayloaded(a) {
		return a
	}
	if IsPayloaded(b) {
		return b
	}
	id := nanTrace.insert(TraceRecord{Op: op, Operands: []float64{float64(a), float64(b)}})
	return SetPayload[F](id)
}

// takeOrigin recovers and removes the trace record for a payloaded NaN.
func takeOrigin[F Real](v F) (TraceRecord, bool) {
	id, ok := Payload(v)
	if !ok {
		return TraceRecord{}, false
	}
	return nanTrace.take(id)
}
