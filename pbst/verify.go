package pbst

import (
	"fmt"
)

// Checks the ordering invariant for every node in the tree: all keys in a node's left subtree sort lower than the node key, and all keys in the right subtree sort higher. This also rules out duplicate keys.
//
// Returns an error wrapping `ErrInvalidTree` on the first violation found.
func Verify[K, V any](compare CompareFunc[K], t Ref[K, V]) error {
	return verifyRange(compare, t, nil, nil)
}

// lower and upper are exclusive bounds inherited from ancestors; nil means unbounded
func verifyRange[K, V any](compare CompareFunc[K], t Ref[K, V], lower, upper *K) error {
	n, ok := t.Node()
	if !ok {
		return nil
	}
	if lower != nil && compare(n.key, *lower) <= 0 {
		return fmt.Errorf("%w: key %v not above ancestor %v", ErrInvalidTree, n.key, *lower)
	}
	if upper != nil && compare(n.key, *upper) >= 0 {
		return fmt.Errorf("%w: key %v not below ancestor %v", ErrInvalidTree, n.key, *upper)
	}
	if err := verifyRange(compare, n.left, lower, &n.key); err != nil {
		return err
	}
	return verifyRange(compare, n.right, &n.key, upper)
}
