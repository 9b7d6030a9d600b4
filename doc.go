// Package finite provides float wrappers that statically track finiteness.
//
// A float64 carries its own error conditions: an overflow produces ±Inf and
// an undefined operation produces NaN, and both poison every comparison made
// downstream. This package splits "a float" into two wrapper types:
//
//   - Clean[F]: statically guaranteed finite (not NaN, not ±Inf)
//   - Dirty[F]: unvalidated, may hold any value including NaN and ±Inf
//
// Both wrappers are transparent single-field value types - the distinction
// exists only in the type system and costs nothing at runtime.
//
// Key design constraints:
//   - A live Clean value is finite at ALL times; this is the type's entire
//     reason for existing
//   - Any arithmetic whose result can escape the finite range returns Dirty,
//     even on two Clean operands (addition can overflow)
//   - The only way back from Dirty to Clean is Sanitize, the single runtime
//     check in the package
//   - Both wrappers expose a strict total order:
//     -Inf < finite < +Inf < NaN, with NaN equal only to itself
//
// The total order deliberately departs from primitive float comparison, which
// is only partial because NaN is incomparable. Equality under Compare/Equal
// is therefore a different relation from ==: NaN equals NaN here.
package finite
