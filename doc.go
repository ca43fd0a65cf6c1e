// Package oneliners is a catalogue of small, self-contained helpers, each
// the size of a one-liner, grouped by the kind of value they work on.
//
// # Packages
//
//   - array: slice helpers (grouping, set algebra, order statistics, sorting)
//   - object: map and record helpers (path lookup, plucking, null removal)
//   - str: string helpers (case conversion, slugs, masks, hashing)
//   - mathx: arithmetic, rounding and 2D geometry, factorial, gcd and lcm
//   - datetime: calendar arithmetic and formatting driven by a Clock
//   - misc: colors, temperatures, URLs, tokens, easing curves and ordinals
//   - purefn: composition, currying, memoization and bounded memo tables
//   - task: delays plus sequential, parallel and settled runners
//   - capability: the Clock, Random and Flags values helpers depend on
//
// # Conventions
//
// Helpers never mutate their input. Where an in-place variant exists it is
// named explicitly, e.g. array.SortInPlace or mathx.MedianInPlace.
//
// Arithmetic does not fail. Division by zero, empty reductions and invalid
// numeric input produce NaN or ±Inf rather than an error. Helpers that parse
// external input (tokens, base64, colors, URLs) return an error instead.
//
// Nothing reads the clock, the random source or the environment implicitly.
// Those are passed in as capabilities:
//
//	now := datetime.Tomorrow(capability.SystemClock{})
//	roll := misc.ThrowDice(capability.NewSeeded(42))
//
// Runners carry a zap logger in the context (see shared/log) and log each
// run at debug level.
package oneliners
