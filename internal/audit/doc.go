// Package audit provides SQLite-backed storage for validation rejects.
//
// Every sample that fails the finiteness check during a CLI run can be
// recorded here: which run, which series, which position, what the value
// was and why it was rejected. The log is append-only; runs are identified
// by UUIDv7 tokens, which sort by creation time.
//
// Database configuration follows the usual SQLite discipline:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - single-writer connection pool to avoid SQLITE_BUSY
//
// Rejected values are stored in their text form (strconv shortest
// representation) because SQLite REAL columns cannot hold NaN.
package audit
