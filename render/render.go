// Package render draws persistent binary search trees as text, using treeprint. It only relies on the read-only traversal exposed by pbst, and the tree packages do not depend on it.
package render

import (
	"fmt"

	"github.com/bluesky-social/pdict/pbst"

	"github.com/xlab/treeprint"
)

const emptyMarker = "◌"

type Options[K, V any] struct {
	// formats a node label; defaults to the key alone
	Format func(key K, value V) string
	// stop descending after this many levels; zero means unlimited
	MaxDepth int
}

// Renders the tree rooted at `root` with default options.
func Tree[K, V any](root pbst.Ref[K, V]) string {
	return TreeWithOptions(root, Options[K, V]{})
}

// Renders the tree rooted at `root`. Each node shows its left child first, then its right; empty children of interior nodes are drawn as "◌".
func TreeWithOptions[K, V any](root pbst.Ref[K, V], opts Options[K, V]) string {
	if opts.Format == nil {
		opts.Format = func(k K, _ V) string {
			return fmt.Sprintf("%v", k)
		}
	}
	n, ok := root.Node()
	if !ok {
		return emptyMarker + "\n"
	}
	tree := treeprint.NewWithRoot(opts.Format(n.Key(), n.Value()))
	walkNode(n, tree, 1, opts)
	return tree.String()
}

func walkNode[K, V any](n *pbst.Node[K, V], tree treeprint.Tree, depth int, opts Options[K, V]) {
	if n.Left().IsEmpty() && n.Right().IsEmpty() {
		return
	}
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		tree.AddNode("…")
		return
	}
	for _, child := range []pbst.Ref[K, V]{n.Left(), n.Right()} {
		c, ok := child.Node()
		if !ok {
			tree.AddNode(emptyMarker)
			continue
		}
		label := opts.Format(c.Key(), c.Value())
		if c.Left().IsEmpty() && c.Right().IsEmpty() {
			tree.AddNode(label)
			continue
		}
		walkNode(c, tree.AddBranch(label), depth+1, opts)
	}
}
