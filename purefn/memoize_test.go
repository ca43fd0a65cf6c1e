package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/oneliners_go/purefn"
	"github.com/stretchr/testify/assert"
)

func TestMemoize_CallsOncePerKey(t *testing.T) {
	count := 0
	double := purefn.Memoize(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, double(2))
	assert.Equal(t, 4, double(2))
	assert.Equal(t, 1, count)

	assert.Equal(t, 6, double(3))
	assert.Equal(t, 2, count)
}

func TestMemoize_CachesZeroResults(t *testing.T) {
	count := 0
	isZero := purefn.Memoize(func(i int) bool {
		count++
		return i == 0
	})

	assert.False(t, isZero(1))
	assert.False(t, isZero(1))
	assert.Equal(t, 1, count)
}

func TestMemoize_RecursiveFibonacci(t *testing.T) {
	calls := 0
	var fibo func(int) int
	fibo = purefn.Memoize(func(n int) int {
		calls++
		if n <= 2 {
			return 1
		}
		return fibo(n-1) + fibo(n-2)
	})

	assert.Equal(t, []int{1, 1, 2, 3, 5, 8}, []int{fibo(1), fibo(2), fibo(3), fibo(4), fibo(5), fibo(6)})
	assert.Equal(t, 6, calls)
	assert.Equal(t, 12586269025, fibo(50))
}

type NonComparable struct {
	Field []int
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestMemoize_StringerKey(t *testing.T) {
	count := 0
	length := purefn.Memoize(func(n NonComparable) int {
		count++
		return len(n.Field)
	})

	assert.Equal(t, 3, length(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 3, length(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}

func TestMemoize_SameStringFormSharesKey(t *testing.T) {
	count := 0
	id := purefn.Memoize(func(v any) any {
		count++
		return v
	})

	assert.Equal(t, 1, id(1))
	assert.Equal(t, 1, id("1"))
	assert.Equal(t, 1, count)
}

func TestMemoize2And3(t *testing.T) {
	count := 0
	add := purefn.Memoize2(func(a, b int) int {
		count++
		return a + b
	})
	assert.Equal(t, 5, add(2, 3))
	assert.Equal(t, 5, add(2, 3))
	assert.Equal(t, 5, add(3, 2))
	assert.Equal(t, 2, count)

	count = 0
	mul := purefn.Memoize3(func(a, b, c int) int {
		count++
		return a * b * c
	})
	assert.Equal(t, 24, mul(2, 3, 4))
	assert.Equal(t, 24, mul(2, 3, 4))
	assert.Equal(t, 1, count)
}
