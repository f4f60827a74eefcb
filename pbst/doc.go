/*
Persistent (immutable, structurally shared) binary search tree.

## Terminology

node: a single immutable tree cell holding one key/value pair and references to a left and right child. nodes are never modified after construction.

ref: a handle to a node, or to "no subtree". the zero value of `Ref` is the empty marker.

version: the tree reachable from one root `Ref`. every insert or delete returns a new root, and the previous root remains a complete, valid tree.

## Path Copying

Insert and delete only re-create the nodes on the path from the root down to the point of modification. Every sibling subtree along the way is re-used by reference in the new version. For an edit at depth h, h+1 nodes are allocated (fewer for deletes, which drop the removed node).

The tree is not balanced. Operations are O(height), and height is bounded only by the number of keys.

## Hacking

Never assign to a field of an existing `Node`. Older versions of the tree may still be reachable from other goroutines, and they rely on nodes never changing.
*/
package pbst
