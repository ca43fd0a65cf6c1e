// Package purefn provides higher-order helpers for pure functions:
// composition, currying, memoization and the box pipeline.
//
// Memoize and its siblings are unbounded and meant for single-goroutine
// recursion such as Fibonacci. The Tableize family trades that for a bounded
// table that is safe to share between goroutines:
//
//	fib, release, err := purefn.TableizeI1O1(slowFib, 1024)
//	if err != nil {
//		return err
//	}
//	defer release()
//
// Both assume purity. A function depending on time, randomness or I/O
// returns stale answers once wrapped.
package purefn
