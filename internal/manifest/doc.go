// Package manifest loads dataset manifests for the finite CLI.
//
// A manifest is a YAML document naming one or more sample series:
//
//	series:
//	  - name: sensor-a
//	    description: hourly readings
//	    values: [1.5, 2.25, NaN, -Inf, 3]
//
// Values are kept as raw scalar text until parsing so that the sentinel
// spellings NaN, +Inf and -Inf (plain YAML strings) survive the trip;
// whether a sentinel is acceptable is the caller's decision, made through
// the finite package, not the loader's.
//
// Manifests are validated against an embedded CUE schema before decoding,
// so shape errors (missing names, non-scalar values, unknown fields) are
// reported with positions instead of surfacing as zero values downstream.
// Series names are NFC-normalized, so two spellings of the same name cannot
// coexist.
package manifest
