package array_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/oneliners_go/array"
	"github.com/stretchr/testify/assert"
)

type car struct {
	Branch, Model, Year string
}

var cars = []car{
	{"audi", "q8", "2019"},
	{"audi", "rs7", "2020"},
	{"ford", "mustang", "2019"},
	{"ford", "explorer", "2020"},
	{"bmw", "x7", "2020"},
}

func branch(c car) string { return c.Branch }

func TestCastArray(t *testing.T) {
	got, ok := array.CastArray[int](1)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, got)

	got, ok = array.CastArray[int]([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, ok = array.CastArray[int]("nope")
	assert.False(t, ok)
}

func TestIsEmptyAndClone(t *testing.T) {
	assert.True(t, array.IsEmpty([]int{}))
	assert.True(t, array.IsEmpty[int](nil))
	assert.False(t, array.IsEmpty([]int{1}))

	src := []int{1, 2, 3}
	c := array.Clone(src)
	c[0] = 99
	assert.Equal(t, []int{1, 2, 3}, src)
}

func TestIsEqual(t *testing.T) {
	assert.True(t, array.IsEqual([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, array.IsEqual([]any{1, 2, 3}, []any{1, "2", 3}))
	assert.True(t, array.IsEqual([]float64{math.NaN()}, []float64{math.NaN()}))

	assert.True(t, array.IsEqualWithoutOrder([]int{1, 2, 3}, []int{1, 3, 2}))
	assert.True(t, array.IsEqualWithoutOrder([]int{1, 1, 2}, []int{2, 1}))
	assert.False(t, array.IsEqualWithoutOrder([]any{1, 2, 3}, []any{1, "2", 3}))
}

func TestToObjectAndGroupBy(t *testing.T) {
	byModel := array.ToObject(cars, func(c car) string { return c.Model })
	assert.Len(t, byModel, 5)
	assert.Equal(t, "bmw", byModel["x7"].Branch)

	groups := array.GroupBy(cars, branch)
	assert.Len(t, groups["audi"], 2)
	assert.Len(t, groups["bmw"], 1)
	assert.Equal(t, "mustang", groups["ford"][0].Model)
}

func TestToNumbers(t *testing.T) {
	got := array.ToNumbers([]string{"2", " 3 ", "4.5", "", "x"})
	assert.Equal(t, []float64{2, 3, 4.5, 0}, got[:4])
	assert.True(t, math.IsNaN(got[4]))
}

func TestLastIndexAndIndices(t *testing.T) {
	assert.Equal(t, 4, array.LastIndex([]int{1, 3, 5, 7, 9, 2, 4, 6, 8}, func(i int) bool { return i%2 == 1 }))
	assert.Equal(t, 5, array.LastIndex([]int{1, 3, 5, 7, 9, 8, 6, 4, 2}, func(i int) bool { return i > 6 }))
	assert.Equal(t, -1, array.LastIndex([]int{}, func(int) bool { return true }))

	assert.Equal(t, []int{2, 3}, array.Indices([]string{"h", "e", "l", "l", "o"}, "l"))
	assert.Equal(t, []int{}, array.Indices([]string{"h", "e", "l", "l", "o"}, "w"))
}

func TestFindLongest(t *testing.T) {
	words := []string{"always", "look", "on", "the", "bright", "side", "of", "life"}
	assert.Equal(t, 6, array.FindLongest(words))
	assert.Equal(t, 0, array.FindLongest(nil))
	assert.Equal(t, 5, array.FindLongest([]string{"héllo"}))
}

func TestWindows(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}}, array.GetConsecutiveArrays(in, 2))
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, array.GetConsecutiveArrays(in, 3))
	assert.Equal(t, [][]int{}, array.GetConsecutiveArrays(in, 6))
	assert.Equal(t, [][]int{}, array.GetConsecutiveArrays(in, 0))

	nine := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, []int{2, 4, 6, 8}, array.GetNthItems(nine, 2))
	assert.Equal(t, []int{3, 6, 9}, array.GetNthItems(nine, 3))
	assert.Equal(t, []int{}, array.GetNthItems(nine, 0))
}

func TestGetSubsets(t *testing.T) {
	assert.Equal(t, [][]int{{}, {1}, {2}, {1, 2}}, array.GetSubsets([]int{1, 2}))
	assert.Equal(t,
		[][]int{{}, {1}, {2}, {1, 2}, {3}, {1, 3}, {2, 3}, {1, 2, 3}},
		array.GetSubsets([]int{1, 2, 3}),
	)
	assert.Equal(t, [][]int{{}}, array.GetSubsets[int](nil))
}

func TestSetOperations(t *testing.T) {
	assert.Equal(t, []int{2, 3}, array.GetIntersection([][]int{{1, 2, 3}, {2, 3, 4, 5}}))
	assert.Equal(t, []int{3}, array.GetIntersection([][]int{{1, 2, 3}, {2, 3, 4, 5}, {1, 3, 5}}))
	assert.Equal(t, []int{}, array.GetIntersection[int](nil))

	assert.Equal(t, []int{1, 2, 3, 4, 5}, array.Unique([]int{1, 2, 3, 1, 4, 4, 5}))
	assert.Equal(t, []int{1, 2, 3}, array.Union([][]int{{1, 2}, {2, 3}, {3}}))

	in := []string{"h", "e", "l", "l", "o", "w", "o", "r", "l", "d"}
	assert.Equal(t, []string{"h", "e", "w", "r", "d"}, array.RemoveDuplicate(in))
}

func TestIntersperseMergeRepeat(t *testing.T) {
	assert.Equal(t, []string{"A", "/", "B", "/", "C"}, array.Intersperse([]string{"A", "B", "C"}, "/"))
	assert.Equal(t, []string{}, array.Intersperse([]string{}, "/"))

	a := []int{1, 2, 3}
	merged := array.Merge(a, []int{4, 5, 6})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, merged)
	merged[0] = 42
	assert.Equal(t, 1, a[0])

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2, 3}, array.Repeat(a, 3))
	assert.Equal(t, []int{}, array.Repeat(a, 0))
}

func TestPartitionAndRemoveFalsy(t *testing.T) {
	odd, even := array.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, odd)
	assert.Equal(t, []int{2, 4}, even)

	in := []any{"a string", false, 0, "", nil, math.NaN(), true, 5, "another string", []int{}}
	assert.Equal(t, []any{"a string", true, 5, "another string", []int{}}, array.RemoveFalsy(in))
}

func TestChunkTransposeSwap(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8}}, array.Chunk(in, 3))
	assert.Equal(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}, array.Chunk(in, 4))
	assert.Equal(t, [][]int{}, array.Chunk(in, 0))

	matrix := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, array.Transpose(matrix))
	assert.Equal(t, [][]int{{1, 3}, {2, 0}}, array.Transpose([][]int{{1, 2}, {3}}))
	assert.Equal(t, [][]int{}, array.Transpose[int](nil))

	src := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 5, 3, 4, 2}, array.SwapItems(src, 1, 4))
	assert.Equal(t, []int{1, 5, 3, 4, 2}, array.SwapItems(src, 4, 1))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, src)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, array.SwapItems(src, 1, 9))
	assert.Equal(t, []int{0, 2}, array.SwapItems([]int{2, 0}, 0, 1))
}
