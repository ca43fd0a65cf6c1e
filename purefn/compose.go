package purefn

func Identity[T any](x T) T { return x }

// Pipe applies fns left to right. No functions yields Identity.
func Pipe[T any](fns []func(T) T) func(T) T {
	fns = append([]func(T) T(nil), fns...)
	return func(x T) T {
		for _, f := range fns {
			x = f(x)
		}
		return x
	}
}

// Compose applies fns right to left. No functions yields Identity.
func Compose[T any](fns []func(T) T) func(T) T {
	fns = append([]func(T) T(nil), fns...)
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

func Compose2[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return Pipe2(f, g)
}

func Compose3[A, B, C, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return Pipe3(f, g, h)
}
