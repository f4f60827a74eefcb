package pbst

// Looks up the node holding `key`. Returns the node's ref and true if found; otherwise an empty ref and false.
//
// Does not allocate.
func Find[K, V any](compare CompareFunc[K], key K, t Ref[K, V]) (Ref[K, V], bool) {
	n, ok := t.Node()
	if !ok {
		return t, false
	}
	order := compare(key, n.key)
	if order == 0 {
		return t, true
	}
	if order < 0 {
		return Find(compare, key, n.left)
	}
	return Find(compare, key, n.right)
}

// Reads the value stored under `key`. If the key is not in the tree, returns the zero value and false.
func Get[K, V any](compare CompareFunc[K], key K, t Ref[K, V]) (V, bool) {
	found, ok := Find(compare, key, t)
	if !ok {
		var zero V
		return zero, false
	}
	return found.node.value, true
}

// Returns the lowest key and its value; false if the tree is empty.
func Min[K, V any](t Ref[K, V]) (K, V, bool) {
	n, ok := t.Node()
	if !ok {
		var k K
		var v V
		return k, v, false
	}
	for !n.left.IsEmpty() {
		n = n.left.node
	}
	return n.key, n.value, true
}

// Returns the node with the highest key; false if the tree is empty.
func Max[K, V any](t Ref[K, V]) (K, V, bool) {
	n, ok := t.Node()
	if !ok {
		var k K
		var v V
		return k, v, false
	}
	for !n.right.IsEmpty() {
		n = n.right.node
	}
	return n.key, n.value, true
}

// Number of edges from the root to the node holding `key`; -1 if the key is not in the tree.
func Depth[K, V any](compare CompareFunc[K], key K, t Ref[K, V]) int {
	depth := 0
	for n, ok := t.Node(); ok; n, ok = t.Node() {
		order := compare(key, n.key)
		if order == 0 {
			return depth
		}
		if order < 0 {
			t = n.left
		} else {
			t = n.right
		}
		depth++
	}
	return -1
}
