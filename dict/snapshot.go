package dict

import (
	"fmt"
	"iter"

	"github.com/bluesky-social/pdict/pbst"
)

// An immutable, captured version of a dictionary. Snapshots are cheap to take (no copying), and may be read from any number of goroutines concurrently, regardless of later writes to the dictionary they came from.
type Snapshot[K, V any] struct {
	root    pbst.Ref[K, V]
	version uint64
	compare pbst.CompareFunc[K]
}

func (s Snapshot[K, V]) TryGetValue(key K) (bool, V, error) {
	var zero V
	if isNullKey(key) {
		return false, zero, ErrNullKey
	}
	val, ok := pbst.Get(s.compare, key, s.root)
	return ok, val, nil
}

// Read-only handle to the root of this version's tree, for traversal and rendering.
func (s Snapshot[K, V]) Root() pbst.Ref[K, V] {
	return s.root
}

// Monotonic counter of committed mutations; zero is the empty dictionary.
func (s Snapshot[K, V]) Version() uint64 {
	return s.version
}

// Number of keys. O(n).
func (s Snapshot[K, V]) Len() int {
	return s.root.Len()
}

// In-order iterator over this version.
func (s Snapshot[K, V]) All() iter.Seq2[K, V] {
	return pbst.All(s.root)
}

func (s Snapshot[K, V]) Verify() error {
	if err := pbst.Verify(s.compare, s.root); err != nil {
		return fmt.Errorf("version %d: %w", s.version, err)
	}
	return nil
}
