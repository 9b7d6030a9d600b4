package finite

import (
	"errors"
	"fmt"
	"math"
)

// InvalidValueError reports a non-finite primitive rejected by Checked or
// Sanitize. It always carries the offending value so callers can decide
// whether to clamp, default, or abort; the package takes no corrective
// action itself.
type InvalidValueError struct {
	// Code identifies which sentinel was rejected.
	Code InvalidValueCode

	// Value is the rejected primitive, widened to float64. Widening is
	// exact for finite float32 values and preserves the NaN/Inf class.
	Value float64

	// Origin records the operation that minted the NaN, when tracing was
	// enabled and the provenance could be recovered. Nil otherwise.
	Origin *TraceRecord
}

// InvalidValueCode categorizes rejected values.
type InvalidValueCode string

const (
	// CodeNaN indicates the value was not a number.
	CodeNaN InvalidValueCode = "NAN"

	// CodePosInf indicates the value was positive infinity.
	CodePosInf InvalidValueCode = "POS_INF"

	// CodeNegInf indicates the value was negative infinity.
	CodeNegInf InvalidValueCode = "NEG_INF"
)

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	if e.Origin != nil {
		return fmt.Sprintf("%s: invalid value %s (from %s)", e.Code, formatFloat(e.Value, 64), e.Origin)
	}
	return fmt.Sprintf("%s: invalid value %s", e.Code, formatFloat(e.Value, 64))
}

// IsInvalidValue returns true if the error is an InvalidValueError.
// Uses errors.As to handle wrapped errors.
func IsInvalidValue(err error) bool {
	var ive *InvalidValueError
	return errors.As(err, &ive)
}

// classify maps a non-finite value to its error code.
// Precondition: v is not finite.
func classify(v float64) InvalidValueCode {
	switch {
	case math.IsNaN(v):
		return CodeNaN
	case math.IsInf(v, 1):
		return CodePosInf
	default:
		return CodeNegInf
	}
}

// newInvalidValue builds the error for a rejected primitive, attaching NaN
// provenance when a traced payload is present.
func newInvalidValue[F Real](v F) *InvalidValueError {
	err := &InvalidValueError{
		Code:  classify(float64(v)),
		Value: float64(v),
	}
	if rec, ok := takeOrigin(v); ok {
		err.Origin = &rec
	}
	return err
}
