package pbst

import (
	"fmt"
	"iter"
)

// Calls `fn` for every key/value in the tree, in ascending key order. Stops early if `fn` returns false.
func Walk[K, V any](t Ref[K, V], fn func(key K, value V) bool) bool {
	n, ok := t.Node()
	if !ok {
		return true
	}
	if !Walk(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return Walk(n.right, fn)
}

// In-order iterator over the tree.
func All[K, V any](t Ref[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		Walk(t, yield)
	}
}

// Returns the keys of the tree in ascending order.
func Keys[K, V any](t Ref[K, V]) []K {
	out := []K{}
	Walk(t, func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// helper function, mostly for testing or development, which recursively inserts key/value pairs in to a map
func ReadToMap[K comparable, V any](t Ref[K, V], m map[K]V) error {
	if m == nil {
		return fmt.Errorf("un-initialized map as an argument")
	}
	Walk(t, func(k K, v V) bool {
		m[k] = v
		return true
	})
	return nil
}
