package pbst

import (
	"fmt"
)

// Builds the tree which results from adding key/value to `t`. The input tree is not modified.
//
// Only the nodes on the path from the root to the insertion point are re-created; every sibling subtree is shared with `t`. If the key already exists, returns an error wrapping `ErrDuplicateKey` and an empty ref, which callers must not install.
//
// t: tree to insert in to. may be empty
// key: key being inserted
// value: value being inserted
func Add[K, V any](compare CompareFunc[K], t Ref[K, V], key K, value V) (Ref[K, V], error) {
	n, ok := t.Node()
	if !ok {
		return Leaf(key, value), nil
	}
	order := compare(key, n.key)
	if order == 0 {
		return Ref[K, V]{}, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if order < 0 {
		left, err := Add(compare, n.left, key, value)
		if err != nil {
			return Ref[K, V]{}, err
		}
		return Of(NewNode(n.key, n.value, left, n.right)), nil
	}
	right, err := Add(compare, n.right, key, value)
	if err != nil {
		return Ref[K, V]{}, err
	}
	return Of(NewNode(n.key, n.value, n.left, right)), nil
}

// Builds a tree from the given keys and values, inserting them in order. Because the tree is not balanced, the shape depends on insertion order.
func FromPairs[K, V any](compare CompareFunc[K], keys []K, values []V) (Ref[K, V], error) {
	if len(keys) != len(values) {
		return Ref[K, V]{}, fmt.Errorf("mismatched key and value counts: %d != %d", len(keys), len(values))
	}
	var t Ref[K, V]
	var err error
	for i := range keys {
		t, err = Add(compare, t, keys[i], values[i])
		if err != nil {
			return Ref[K, V]{}, fmt.Errorf("failed to build tree: %w", err)
		}
	}
	return t, nil
}
