// Package array holds slice helpers. Inputs are never modified, except by
// functions whose name ends in InPlace.
package array

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/on-the-ground/oneliners_go/shared/kind"
	"github.com/samber/lo"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CastArray returns value itself when it is a []T, or wraps a T.
func CastArray[T any](value any) ([]T, bool) {
	switch v := value.(type) {
	case []T:
		return v, true
	case T:
		return []T{v}, true
	default:
		return nil, false
	}
}

func IsEmpty[T any](arr []T) bool {
	return len(arr) == 0
}

func Clone[T any](arr []T) []T {
	return append([]T{}, arr...)
}

// IsEqual compares element by element with kind.Equal.
func IsEqual[T any](a, b []T) bool {
	return kind.Equal(a, b)
}

// IsEqualWithoutOrder compares the sets of values, ignoring order and repeats.
func IsEqualWithoutOrder[T comparable](a, b []T) bool {
	ua, ub := lo.Uniq(a), lo.Uniq(b)
	return len(ua) == len(ub) && lo.Every(ua, ub)
}

// ToObject indexes arr by key. On a repeated key the later item wins.
func ToObject[T any, K comparable](arr []T, key func(T) K) map[K]T {
	return lo.KeyBy(arr, key)
}

// ToNumbers parses each string as a float. Blank strings are 0 and
// anything unparsable is NaN.
func ToNumbers(arr []string) []float64 {
	return lo.Map(arr, func(s string, _ int) float64 {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	})
}

func LastIndex[T any](arr []T, predicate func(T) bool) int {
	for i := len(arr) - 1; i >= 0; i-- {
		if predicate(arr[i]) {
			return i
		}
	}
	return -1
}

func Indices[T comparable](arr []T, value T) []int {
	out := []int{}
	for i, v := range arr {
		if v == value {
			out = append(out, i)
		}
	}
	return out
}

// FindLongest is the rune length of the longest word, 0 when empty.
func FindLongest(words []string) int {
	longest := 0
	for _, w := range words {
		longest = max(longest, utf8.RuneCountInString(w))
	}
	return longest
}

// GetConsecutiveArrays returns every window of size consecutive items.
func GetConsecutiveArrays[T any](arr []T, size int) [][]T {
	if size <= 0 || size > len(arr) {
		return [][]T{}
	}
	out := make([][]T, 0, len(arr)-size+1)
	for i := 0; i+size <= len(arr); i++ {
		out = append(out, Clone(arr[i:i+size]))
	}
	return out
}

// GetNthItems returns items nth, 2*nth, ... counting from one.
func GetNthItems[T any](arr []T, nth int) []T {
	if nth <= 0 {
		return []T{}
	}
	return lo.Filter(arr, func(_ T, i int) bool {
		return i%nth == nth-1
	})
}

// GetSubsets returns the power set, subsets without the later items first.
func GetSubsets[T any](arr []T) [][]T {
	subsets := [][]T{{}}
	for _, item := range arr {
		n := len(subsets)
		for _, s := range subsets[:n] {
			next := make([]T, len(s), len(s)+1)
			copy(next, s)
			subsets = append(subsets, append(next, item))
		}
	}
	return subsets
}

func GetIntersection[T comparable](arrs [][]T) []T {
	if len(arrs) == 0 {
		return []T{}
	}
	rest := arrs[1:]
	return lo.Filter(lo.Uniq(arrs[0]), func(v T, _ int) bool {
		for _, b := range rest {
			if !lo.Contains(b, v) {
				return false
			}
		}
		return true
	})
}

func Unique[T comparable](arr []T) []T {
	return lo.Uniq(arr)
}

func Union[T comparable](arrs [][]T) []T {
	return lo.Uniq(lo.Flatten(arrs))
}

func GroupBy[T any, K comparable](arr []T, key func(T) K) map[K][]T {
	return lo.GroupBy(arr, key)
}

func Intersperse[T any](arr []T, sep T) []T {
	if len(arr) == 0 {
		return []T{}
	}
	out := make([]T, 0, 2*len(arr)-1)
	for i, v := range arr {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, v)
	}
	return out
}

func Merge[T any](a, b []T) []T {
	return slices.Concat(a, b)
}

// Partition splits arr into the items matching predicate and the rest.
func Partition[T any](arr []T, predicate func(T) bool) (matched, rest []T) {
	return lo.FilterReject(arr, func(v T, _ int) bool {
		return predicate(v)
	})
}

// RemoveDuplicate keeps only the values that occur exactly once.
func RemoveDuplicate[T comparable](arr []T) []T {
	return lo.FindUniques(arr)
}

// RemoveFalsy drops nil, false, zero numbers, NaN, empty strings and nil
// slices, maps and pointers. Empty but allocated collections are kept.
func RemoveFalsy[T any](arr []T) []T {
	return lo.Filter(arr, func(v T, _ int) bool {
		return truthy(v)
	})
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		if math.IsNaN(rv.Float()) {
			return false
		}
	}
	return !rv.IsZero()
}

func Repeat[T any](arr []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	return lo.Flatten(lo.RepeatBy(n, func(_ int) []T { return arr }))
}

// Chunk splits arr into groups of size; the last one may be shorter.
func Chunk[T any](arr []T, size int) [][]T {
	if size <= 0 || len(arr) == 0 {
		return [][]T{}
	}
	return lo.Chunk(Clone(arr), size)
}

// Transpose swaps rows and columns. The width is taken from the first row
// and short rows are padded with the zero value.
func Transpose[T any](matrix [][]T) [][]T {
	if len(matrix) == 0 {
		return [][]T{}
	}
	out := make([][]T, len(matrix[0]))
	for i := range out {
		out[i] = make([]T, len(matrix))
		for j, row := range matrix {
			if i < len(row) {
				out[i][j] = row[i]
			}
		}
	}
	return out
}

// SwapItems returns a copy with items i and j exchanged. Out of range
// indices return an unchanged copy.
func SwapItems[T any](arr []T, i, j int) []T {
	out := Clone(arr)
	if i < 0 || j < 0 || i >= len(out) || j >= len(out) {
		return out
	}
	out[i], out[j] = out[j], out[i]
	return out
}
