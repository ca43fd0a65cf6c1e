package purefn

import "fmt"

// KeyOf is the cache key representation of an argument: String() for a
// fmt.Stringer, fmt.Sprint otherwise. Values that print alike share a key.
func KeyOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Memoize caches fn by the key of its argument. The cache is unbounded,
// zero results are cached like any other, and recursive calls through the
// returned function share it. Not safe for concurrent use; see TableizeI1O1.
func Memoize[K, V any](fn func(K) V) func(K) V {
	cache := make(map[string]V)
	return func(k K) V {
		key := KeyOf(k)
		if v, ok := cache[key]; ok {
			return v
		}
		v := fn(k)
		cache[key] = v
		return v
	}
}

func Memoize2[A, B, V any](fn func(A, B) V) func(A, B) V {
	memo := NewTrie[V]()
	return func(a A, b B) V {
		keys := []string{KeyOf(a), KeyOf(b)}
		if v, ok := memo.Load(keys); ok {
			return v
		}
		v := fn(a, b)
		memo.Store(keys, v)
		return v
	}
}

func Memoize3[A, B, C, V any](fn func(A, B, C) V) func(A, B, C) V {
	memo := NewTrie[V]()
	return func(a A, b B, c C) V {
		keys := []string{KeyOf(a), KeyOf(b), KeyOf(c)}
		if v, ok := memo.Load(keys); ok {
			return v
		}
		v := fn(a, b, c)
		memo.Store(keys, v)
		return v
	}
}
