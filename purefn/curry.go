package purefn

import "fmt"

// Variadic is the untyped shape a curried function is lifted into.
type Variadic[R any] func(args ...any) R

type CurryState int

const (
	Awaiting CurryState = iota
	Complete
)

func (s CurryState) String() string {
	switch s {
	case Awaiting:
		return "awaiting"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("CurryState(%d)", int(s))
	}
}

// Curried is an immutable partial application. Every Apply returns a new
// value, so one Curried can be continued along several argument groupings.
type Curried[R any] struct {
	arity int
	fn    Variadic[R]
	args  []any
}

// Curry starts a partial application of fn, which declares arity parameters.
func Curry[R any](arity int, fn Variadic[R], args ...any) Curried[R] {
	return Curried[R]{
		arity: arity,
		fn:    fn,
		args:  append([]any(nil), args...),
	}
}

// State is Complete once at least arity arguments have been supplied.
func (c Curried[R]) State() CurryState {
	if len(c.args) >= c.arity {
		return Complete
	}
	return Awaiting
}

func (c Curried[R]) Apply(args ...any) Curried[R] {
	next := make([]any, 0, len(c.args)+len(args))
	next = append(next, c.args...)
	next = append(next, args...)
	return Curried[R]{arity: c.arity, fn: c.fn, args: next}
}

// Result invokes fn with every accumulated argument, extras included.
// It reports false while arguments are still awaited.
func (c Curried[R]) Result() (R, bool) {
	if c.State() != Complete {
		var zero R
		return zero, false
	}
	return c.fn(c.args...), true
}

// Args returns a copy of the accumulated arguments.
func (c Curried[R]) Args() []any {
	return append([]any(nil), c.args...)
}

func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return fn(a, b) }
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return fn(a, b, c) }
		}
	}
}
