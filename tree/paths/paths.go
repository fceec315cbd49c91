// Package paths checks the shape of binary trees without
// looking at keys, values or balances.
package paths

import (
	"go.lepak.sg/trees/tree"
)

// Equal returns true if every leaf under root is at the same depth.
// An empty tree and a single node both count.
// A node with one child contributes no leaf on its empty side,
// so a chain of single children is fine.
func Equal[K, V any](root *tree.Node[K, V]) bool {
	for root != nil {
		switch {
		case root.Left == nil && root.Right == nil:
			return true
		case root.Right == nil:
			root = root.Left
		case root.Left == nil:
			root = root.Right
		default:
			if Depth(root.Left) != Depth(root.Right) {
				return false
			}
			return Equal(root.Left) && Equal(root.Right)
		}
	}

	return true
}

// Depth returns the number of nodes on the longest path
// from n down to a leaf, or 0 for nil.
func Depth[K, V any](n *tree.Node[K, V]) int {
	return n.Height()
}
