package purefn

import "github.com/on-the-ground/oneliners_go/shared/kind"

// Box holds a value so a chain of transforms reads top to bottom.
type Box[T any] struct {
	value T
}

func BoxOf[T any](x T) Box[T] {
	return Box[T]{value: x}
}

// Next maps the boxed value and keeps it boxed.
// It is a function rather than a method because the result type changes.
func Next[T, U any](b Box[T], f func(T) U) Box[U] {
	return BoxOf(f(b.value))
}

// Then maps the boxed value within the same type.
func (b Box[T]) Then(f func(T) T) Box[T] {
	return BoxOf(f(b.value))
}

// Fold unboxes through f.
func Fold[T, U any](b Box[T], f func(T) U) U {
	return f(b.value)
}

func (b Box[T]) Value() T {
	return b.value
}

func IsFunction(v any) bool {
	return kind.Of(v) == kind.Callable
}
