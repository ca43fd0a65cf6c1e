package purefn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// keySeparator keeps ("ab", "c") and ("a", "bc") apart.
const keySeparator = "\x1f"

var ErrInvalidTableSize = errors.New("maxTableSize should be greater than 0")

type entry[O any] struct {
	key   string
	value O
}

type table[O any] struct {
	cache *ristretto.Cache[uint64, entry[O]]
}

func newTable[O any](maxTableSize uint32) (*table[O], error) {
	if maxTableSize == 0 {
		return nil, ErrInvalidTableSize
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[O]]{
		NumCounters:        int64(maxTableSize) * 10,
		MaxCost:            int64(maxTableSize),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &table[O]{cache: cache}, nil
}

func tableKey(args ...any) (uint64, string) {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(keySeparator)
		}
		sb.WriteString(KeyOf(arg))
	}
	full := sb.String()
	return xxhash.Sum64String(full), full
}

func (t *table[O]) load(hash uint64, key string) (O, bool) {
	e, ok := t.cache.Get(hash)
	// a digest collision misses instead of returning a foreign value
	if !ok || e.key != key {
		var zero O
		return zero, false
	}
	return e.value, true
}

func (t *table[O]) store(hash uint64, key string, value O) {
	t.cache.Set(hash, entry[O]{key: key, value: value}, 1)
	t.cache.Wait()
}

func (t *table[O]) release() {
	t.cache.Close()
}

func tableize[O any](
	pureFn func(...any) O,
	maxTableSize uint32,
) (func(...any) O, func(), error) {
	memo, err := newTable[O](maxTableSize)
	if err != nil {
		return nil, nil, err
	}
	return func(args ...any) O {
		hash, key := tableKey(args...)
		if v, ok := memo.load(hash, key); ok {
			return v
		}
		v := pureFn(args...)
		memo.store(hash, key, v)
		return v
	}, memo.release, nil
}

// TableizeI1O1 memoizes pureFn in a bounded table safe for concurrent use.
// Entries beyond maxTableSize are evicted by admission frequency.
// Call release once the returned function is no longer used.
func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) (fn func(I1) O1, release func(), err error) {
	tableized, release, err := tableize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1))
		},
		maxTableSize,
	)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1) O1 {
		return tableized(i1)
	}, release, nil
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) (fn func(I1, I2) O1, release func(), err error) {
	tableized, release, err := tableize(
		func(args ...any) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}, release, nil
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) (fn func(I1) (O1, O2), release func(), err error) {
	tableized, release, err := tableize(
		func(args ...any) result[O1, O2] {
			v1, v2 := pureFn(args[0].(I1))
			return result[O1, O2]{O1: v1, O2: v2}
		},
		maxTableSize,
	)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1) (O1, O2) {
		res := tableized(i1)
		return res.O1, res.O2
	}, release, nil
}
