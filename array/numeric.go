package array

import (
	"cmp"
	"math"
	"slices"

	"github.com/on-the-ground/oneliners_go/capability"
	"github.com/samber/lo"
)

func CountBy[T any, K comparable](arr []T, key func(T) K) map[K]int {
	return lo.CountValuesBy(arr, key)
}

func CountOccurrences[T comparable](arr []T, val T) int {
	return lo.Count(arr, val)
}

func CountOccurrencesElements[T comparable](arr []T) map[T]int {
	return lo.CountValues(arr)
}

// Accumulate returns the running totals of arr.
func Accumulate[T Number](arr []T) []T {
	out := make([]T, 0, len(arr))
	var total T
	for _, v := range arr {
		total += v
		out = append(out, total)
	}
	return out
}

// Range is every integer from lower to upper inclusive, empty when upper < lower.
func Range(lower, upper int) []int {
	if upper < lower {
		return []int{}
	}
	return lo.RangeFrom(lower, upper-lower+1)
}

// Closest returns the value nearest to n, the earliest one on a tie.
// NaN when arr is empty.
func Closest(arr []float64, n float64) float64 {
	if len(arr) == 0 {
		return math.NaN()
	}
	best := arr[0]
	for _, v := range arr[1:] {
		if math.Abs(v-n) < math.Abs(best-n) {
			best = v
		}
	}
	return best
}

// IndexOfMax is the index of the first largest item, -1 when empty.
func IndexOfMax[T cmp.Ordered](arr []T) int {
	if len(arr) == 0 {
		return -1
	}
	best := 0
	for i, v := range arr {
		if v > arr[best] {
			best = i
		}
	}
	return best
}

// IndexOfMin is the index of the first smallest item, -1 when empty.
func IndexOfMin[T cmp.Ordered](arr []T) int {
	if len(arr) == 0 {
		return -1
	}
	best := 0
	for i, v := range arr {
		if v < arr[best] {
			best = i
		}
	}
	return best
}

// MaxBy returns the item with the largest key, the first one on a tie.
func MaxBy[T any, K cmp.Ordered](arr []T, key func(T) K) (T, bool) {
	if len(arr) == 0 {
		var zero T
		return zero, false
	}
	return lo.MaxBy(arr, func(a, b T) bool { return key(a) > key(b) }), true
}

// MinBy returns the item with the smallest key, the last one on a tie.
func MinBy[T any, K cmp.Ordered](arr []T, key func(T) K) (T, bool) {
	if len(arr) == 0 {
		var zero T
		return zero, false
	}
	return lo.MinBy(arr, func(a, b T) bool { return key(a) <= key(b) }), true
}

// Max is -Inf when arr is empty and NaN when arr holds a NaN.
func Max(arr []float64) float64 {
	if len(arr) == 0 {
		return math.Inf(-1)
	}
	return slices.Max(arr)
}

// Min is +Inf when arr is empty and NaN when arr holds a NaN.
func Min(arr []float64) float64 {
	if len(arr) == 0 {
		return math.Inf(1)
	}
	return slices.Min(arr)
}

// Average is NaN when arr is empty.
func Average[T Number](arr []T) float64 {
	return float64(Sum(arr)) / float64(len(arr))
}

// Sum is 0 when arr is empty.
func Sum[T Number](arr []T) T {
	return lo.Sum(arr)
}

// Ranking gives each item its zero-based rank under descending order,
// the count of strictly larger items, so ties share the best rank.
func Ranking[T cmp.Ordered](arr []T) []int {
	return lo.Map(arr, func(x T, _ int) int {
		return lo.CountBy(arr, func(w T) bool { return w > x })
	})
}

// Shuffle orders a copy of arr by a random key drawn per item.
func Shuffle[T any](arr []T, r capability.Random) []T {
	type keyed struct {
		sort  float64
		value T
	}
	tagged := lo.Map(arr, func(v T, _ int) keyed {
		return keyed{sort: r.Float64(), value: v}
	})
	slices.SortStableFunc(tagged, func(a, b keyed) int {
		return cmp.Compare(a.sort, b.sort)
	})
	return lo.Map(tagged, func(k keyed, _ int) T { return k.value })
}

// SortBy returns a copy stably sorted by key.
func SortBy[T any, K cmp.Ordered](arr []T, key func(T) K) []T {
	out := Clone(arr)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}

// Sort returns an ascending copy.
func Sort[T cmp.Ordered](arr []T) []T {
	return SortInPlace(Clone(arr))
}

// SortInPlace sorts arr ascending and returns it.
func SortInPlace[T cmp.Ordered](arr []T) []T {
	slices.Sort(arr)
	return arr
}
