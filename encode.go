package finite

import (
	"errors"
	"fmt"
	"strconv"
)

// Text and JSON encoding for both wrappers.
//
// encoding/json cannot represent NaN or ±Inf as numbers, so both wrappers
// marshal through their text form (shortest strconv representation, which
// prints sentinels as "NaN", "+Inf", "-Inf") quoted as a JSON string.
// Clean's unmarshal paths run the checked constructor, so decoding is a
// validation boundary: a document containing "NaN" cannot produce a Clean.

func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// parseRaw parses s at width F. Out-of-range magnitudes come back as ±Inf
// with ok=true; the caller's variant decides whether that is acceptable.
func parseRaw[F Real](s string) (F, error) {
	f, err := strconv.ParseFloat(s, bitSize[F]())
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse float: %w", err)
	}
	return F(f), nil
}

func unquoteJSON(b []byte) string {
	if s, err := strconv.Unquote(string(b)); err == nil {
		return s
	}
	return string(b)
}

// String returns the shortest decimal representation of the value.
func (c Clean[F]) String() string {
	return formatFloat(float64(c.v), bitSize[F]())
}

// String returns the shortest decimal representation, including the
// sentinel spellings "NaN", "+Inf" and "-Inf".
func (d Dirty[F]) String() string {
	return formatFloat(float64(d.v), bitSize[F]())
}

// MarshalText implements encoding.TextMarshaler.
func (c Clean[F]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It runs the checked
// constructor: non-finite input (including magnitudes out of range for F,
// which parse to ±Inf) fails with *InvalidValueError.
func (c *Clean[F]) UnmarshalText(b []byte) error {
	v, err := parseRaw[F](string(b))
	if err != nil {
		return err
	}
	clean, err := Checked(v)
	if err != nil {
		return err
	}
	*c = clean
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Dirty[F]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Accepts any float
// spelling strconv does, sentinels included.
func (d *Dirty[F]) UnmarshalText(b []byte) error {
	v, err := parseRaw[F](string(b))
	if err != nil {
		return err
	}
	d.v = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding as a JSON string.
func (c Clean[F]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts a JSON number or a
// quoted float string and validates the result.
func (c *Clean[F]) UnmarshalJSON(b []byte) error {
	return c.UnmarshalText([]byte(unquoteJSON(b)))
}

// MarshalJSON implements json.Marshaler, encoding as a JSON string so that
// sentinel values survive the trip.
func (d Dirty[F]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dirty[F]) UnmarshalJSON(b []byte) error {
	return d.UnmarshalText([]byte(unquoteJSON(b)))
}
