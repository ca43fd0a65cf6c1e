// Package kind classifies dynamic values into a closed set of kinds and
// compares them structurally.
package kind

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

type Kind int

const (
	Other Kind = iota
	Null
	Boolean
	Number
	Text
	Sequence
	Mapping
	Record
	Callable
	Date
	Error
)

var names = map[Kind]string{
	Other:    "Other",
	Null:     "Null",
	Boolean:  "Boolean",
	Number:   "Number",
	Text:     "String",
	Sequence: "Array",
	Mapping:  "Object",
	Record:   "Record",
	Callable: "Function",
	Date:     "Date",
	Error:    "Error",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	timeType  = reflect.TypeOf(time.Time{})
)

// Of returns the kind of v. Pointers are followed; a nil pointer is Null.
func Of(v any) Kind {
	if v == nil {
		return Null
	}
	return ofValue(reflect.ValueOf(v))
}

func ofValue(rv reflect.Value) Kind {
	if !rv.IsValid() {
		return Null
	}
	if rv.Type().Implements(errorType) {
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return Null
		}
		return Error
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return ofValue(rv.Elem())
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.String:
		return Text
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		return Mapping
	case reflect.Func:
		return Callable
	case reflect.Struct:
		if rv.Type() == timeType {
			return Date
		}
		return Record
	default:
		return Other
	}
}

// Equal reports whether a and b are structurally equal.
// Numbers compare by value across Go numeric types and NaN equals NaN.
// Mappings compare by key set and values regardless of iteration order.
// Functions compare by identity.
func Equal(a, b any) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	ka, kb := ofValue(a), ofValue(b)
	if ka != kb {
		return false
	}
	a, b = deref(a), deref(b)

	switch ka {
	case Null:
		return true
	case Boolean:
		return a.Bool() == b.Bool()
	case Number:
		fa, fb := toFloat(a), toFloat(b)
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	case Text:
		return a.String() == b.String()
	case Date:
		if !a.CanInterface() || !b.CanInterface() {
			return equalOpaque(a, b)
		}
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	case Error:
		if !a.CanInterface() || !b.CanInterface() {
			return equalOpaque(a, b)
		}
		return a.Interface().(error).Error() == b.Interface().(error).Error()
	case Sequence:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case Mapping:
		return equalMaps(a, b)
	case Record:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case Callable:
		return a.Pointer() == b.Pointer()
	default:
		if a.CanInterface() && b.CanInterface() {
			return reflect.DeepEqual(a.Interface(), b.Interface())
		}
		return equalOpaque(a, b)
	}
}

// equalOpaque compares values read through unexported fields, which cannot
// be turned back into interfaces. It walks the representation by reflect
// kind instead.
func equalOpaque(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalOpaque(a.Elem(), b.Elem())
	case reflect.Pointer:
		if a.Pointer() == b.Pointer() {
			return true
		}
		if a.IsNil() || b.IsNil() {
			return false
		}
		return equalOpaque(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalOpaque(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalOpaque(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		return equalMaps(a, b)
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		fa, fb := a.Float(), b.Float()
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	default:
		return false
	}
}

// equalMaps pairs every key of a with a structurally equal key of b,
// so 1 and "1" stay distinct keys.
func equalMaps(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	bKeys := b.MapKeys()
	matched := make([]bool, len(bKeys))

	iter := a.MapRange()
	for iter.Next() {
		found := false
		for i, bk := range bKeys {
			if matched[i] || !equalValue(iter.Key(), bk) || !equalValue(iter.Value(), b.MapIndex(bk)) {
				continue
			}
			matched[i] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

func deref(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && !rv.IsNil() {
		if rv.Type().Implements(errorType) {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}
