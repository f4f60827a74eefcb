package pbst

// Represents a single cell in the tree. A `Node` is immutable once constructed, and may be reachable from any number of tree versions at the same time.
type Node[K, V any] struct {
	key   K
	value V
	left  Ref[K, V]
	right Ref[K, V]
}

// Handle to a `Node`, or to an empty subtree. The zero value is the empty marker.
//
// Multiple refs (in different tree versions) may point at the same node.
type Ref[K, V any] struct {
	node *Node[K, V]
}

// Compares two keys, returning a negative number if a sorts before b, zero if they are equal, and a positive number if a sorts after b. Must be a total order.
type CompareFunc[K any] func(a, b K) int

func NewNode[K, V any](key K, value V, left, right Ref[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
		left:  left,
		right: right,
	}
}

func (n *Node[K, V]) Key() K {
	return n.key
}

func (n *Node[K, V]) Value() V {
	return n.value
}

func (n *Node[K, V]) Left() Ref[K, V] {
	return n.left
}

func (n *Node[K, V]) Right() Ref[K, V] {
	return n.right
}

// Returns the empty marker.
func Empty[K, V any]() Ref[K, V] {
	return Ref[K, V]{}
}

// Wraps a node in a `Ref`. A nil node gives the empty marker.
func Of[K, V any](n *Node[K, V]) Ref[K, V] {
	return Ref[K, V]{node: n}
}

// Builds a new single-node tree.
func Leaf[K, V any](key K, value V) Ref[K, V] {
	return Of(NewNode(key, value, Empty[K, V](), Empty[K, V]()))
}

func (r Ref[K, V]) IsEmpty() bool {
	return r.node == nil
}

// Returns the referenced node, and false if the ref is empty.
func (r Ref[K, V]) Node() (*Node[K, V], bool) {
	return r.node, r.node != nil
}

// Returns true if both refs point at the exact same node (or are both empty). This is pointer identity, not structural equality, and is how sharing between versions is observed.
func (r Ref[K, V]) Same(other Ref[K, V]) bool {
	return r.node == other.node
}

// Number of nodes on the longest path from this ref to a leaf. An empty tree has height zero.
func (r Ref[K, V]) Height() int {
	if r.node == nil {
		return 0
	}
	return 1 + max(r.node.left.Height(), r.node.right.Height())
}

// Counts the keys in the tree. O(n).
func (r Ref[K, V]) Len() int {
	if r.node == nil {
		return 0
	}
	return 1 + r.node.left.Len() + r.node.right.Len()
}
