// Package object holds helpers over maps and structs.
package object

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/on-the-ground/oneliners_go/shared/helper"
	"github.com/on-the-ground/oneliners_go/shared/kind"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// IsEqual reports whether every object is structurally equal to the first.
func IsEqual(objects []any) bool {
	for _, obj := range objects {
		if !kind.Equal(obj, objects[0]) {
			return false
		}
	}
	return true
}

func Pluck[T, V any](objs []T, get func(T) V) []V {
	return lo.Map(objs, func(obj T, _ int) V { return get(obj) })
}

// PluckKey reads key from every map, yielding the zero value where it is missing.
func PluckKey[K comparable, V any](objs []map[K]V, key K) []V {
	return lo.Map(objs, func(obj map[K]V, _ int) V { return obj[key] })
}

// GetValue walks a dotted path through maps, slices, arrays and exported
// struct fields. Pointers and interfaces are followed on the way.
func GetValue(path string, obj any) mo.Option[any] {
	cur := reflect.ValueOf(obj)
	for _, seg := range strings.Split(path, ".") {
		cur = indirect(cur)
		if !cur.IsValid() {
			return mo.None[any]()
		}
		next, ok := step(cur, seg)
		if !ok {
			return mo.None[any]()
		}
		cur = next
	}
	cur = indirect(cur)
	if !cur.IsValid() || !cur.CanInterface() {
		return mo.None[any]()
	}
	return mo.Some(cur.Interface())
}

// GetAs is GetValue followed by a type assertion to T.
func GetAs[T any](path string, obj any) mo.Option[T] {
	typed, ok := helper.GetTypedValueOf2[T](GetValue(path, obj).Get)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(typed)
}

var ErrPathNotFound = errors.New("path not found")

// Lookup is GetAs for callers that need to tell a missing path
// from a value of the wrong type.
func Lookup[T any](path string, obj any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		v, ok := GetValue(path, obj).Get()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, path)
		}
		return v, nil
	})
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func step(v reflect.Value, seg string) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Map:
		key, ok := mapKey(v.Type().Key(), seg)
		if !ok {
			return reflect.Value{}, false
		}
		next := v.MapIndex(key)
		return next, next.IsValid()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	case reflect.Struct:
		f, ok := v.Type().FieldByName(seg)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		return v.FieldByIndex(f.Index), true
	default:
		return reflect.Value{}, false
	}
}

func mapKey(t reflect.Type, seg string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(t), true
	case reflect.Interface:
		return reflect.ValueOf(seg), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	default:
		return reflect.Value{}, false
	}
}

// RemoveNullUndefined drops entries whose value is of kind.Null.
func RemoveNullUndefined[K comparable, V any](m map[K]V) map[K]V {
	return lo.PickBy(m, func(_ K, v V) bool {
		return kind.Of(v) != kind.Null
	})
}

func ShallowCopy[K comparable, V any](m map[K]V) map[K]V {
	return lo.Assign(m)
}

// Sort returns the entries of m ordered by key.
func Sort[K cmp.Ordered, V any](m map[K]V) []lo.Entry[K, V] {
	entries := lo.Entries(m)
	slices.SortFunc(entries, func(a, b lo.Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}
