package list

import (
	"fmt"
	"reflect"

	"github.com/migl/conslist/pkg/persistent/hash"
)

// Equaler wraps the Equal method. Elements implementing it are compared with
// it; lists themselves implement it, so lists of lists compare structurally.
// Elements that implement Equaler but not Hasher all hash to 0.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must have
	// the same hash code.
	Equal(other any) bool
}

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// isNull reports whether v is the null element: a nil interface, or a nil
// value of a nilable kind.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func equalElem(x, y any) bool {
	if xNull, yNull := isNull(x), isNull(y); xNull || yNull {
		return xNull && yNull
	}
	switch x := x.(type) {
	case Equaler:
		return x.Equal(y)
	case string:
		return x == y
	case int:
		return x == y
	case bool:
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// hashElem returns 0 for values it doesn't know how to hash, which is
// consistent with equalElem.
func hashElem(v any) uint32 {
	if isNull(v) {
		return 0
	}
	switch v := v.(type) {
	case Hasher:
		return v.Hash()
	case Equaler:
		// Equal may consider values equal that reflection wouldn't.
		return 0
	case string:
		return hash.String(v)
	case bool:
		return hash.Bool(v)
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hash.UInt64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hash.UInt64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return hash.Float64(rv.Float())
	case reflect.String:
		return hash.String(rv.String())
	case reflect.Pointer:
		return hashElem(rv.Elem().Interface())
	}
	return 0
}

func hashIterator[T any](it Iterator[T]) uint32 {
	h := hash.DJBInit
	for ; it.HasElem(); it.Next() {
		h = hash.DJBCombine(h, hashElem(it.Elem()))
	}
	return h
}

// reprElem renders an element for String. Pointers are followed, so that a
// list of *string prints its strings.
func reprElem(v any) string {
	if isNull(v) {
		return "null"
	}
	switch v := v.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return reprElem(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
