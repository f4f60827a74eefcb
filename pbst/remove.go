package pbst

// Removes the lowest key from a non-empty tree. Returns the new subtree and the extracted key/value.
//
// Panics if `t` is empty.
func RemoveMinimum[K, V any](t Ref[K, V]) (Ref[K, V], K, V) {
	n, ok := t.Node()
	if !ok {
		panic("pbst: RemoveMinimum called on empty tree")
	}
	if n.left.IsEmpty() {
		return n.right, n.key, n.value
	}
	left, k, v := RemoveMinimum(n.left)
	return Of(NewNode(n.key, n.value, left, n.right)), k, v
}

// Builds the tree which results from removing `key` from `t`, and reports whether the key was found. The input tree is not modified.
//
// A node with two children is replaced by its in-order successor (the minimum of the right subtree). If the key is not in the tree, `t` itself is returned and nothing is allocated.
func Remove[K, V any](compare CompareFunc[K], key K, t Ref[K, V]) (Ref[K, V], bool) {
	n, ok := t.Node()
	if !ok {
		return t, false
	}
	order := compare(key, n.key)
	if order == 0 {
		if n.left.IsEmpty() {
			return n.right, true
		}
		if n.right.IsEmpty() {
			return n.left, true
		}
		right, k, v := RemoveMinimum(n.right)
		return Of(NewNode(k, v, n.left, right)), true
	}
	if order < 0 {
		left, found := Remove(compare, key, n.left)
		if !found {
			return t, false
		}
		return Of(NewNode(n.key, n.value, left, n.right)), true
	}
	right, found := Remove(compare, key, n.right)
	if !found {
		return t, false
	}
	return Of(NewNode(n.key, n.value, n.left, right)), true
}
