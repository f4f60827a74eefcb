package dict

import (
	"errors"
	"reflect"

	"github.com/bluesky-social/pdict/pbst"
)

var ErrNullKey = errors.New("dictionary key is nil")

var ErrDuplicateKey = pbst.ErrDuplicateKey

var ErrNoHistory = errors.New("dictionary does not retain version history")

var ErrVersionEvicted = errors.New("dictionary version no longer retained")

var ErrNothingToUndo = errors.New("no retained operation to undo")

// Reports whether a key is "null": a nil interface, or a nil pointer, map, slice, channel or function. Keys of value types are never null.
func isNullKey[K any](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
