package avl

import (
	"go.lepak.sg/trees/tree"
)

// Remove removes k from the tree and rebalances.
// If k is not in the tree, nothing happens and Remove returns false.
func (t *Tree[K, V]) Remove(k K) bool {
	n := t.bst.Find(k)
	if n == nil {
		return false
	}

	// Reduce to the case where n has at most one child.
	if n.Left != nil && n.Right != nil {
		t.nodeSwap(n, n.Predecessor())
	}

	parent := n.Parent
	var diff int8
	if parent != nil {
		if parent.Left == n {
			// the left side is getting shorter
			diff = 1
		} else {
			diff = -1
		}
	}

	t.bst.Unlink(n)

	if parent != nil {
		t.removeFix(parent, diff)
	}

	return true
}

// removeFix is called when one side of node's subtree has become one
// shorter: diff is +1 if it was the left side, -1 if it was the right.
// It walks upwards, rotating where a node has become too lopsided,
// until some subtree's height is found to be unchanged.
// This is a loop rather than recursion so that a removal which
// shortens every level still runs in constant stack.
func (t *Tree[K, V]) removeFix(node *tree.Node[K, V], diff int8) {
	for node != nil {
		node.UpdateBalance(diff)

		// Work out where to go next before rotating moves node.
		parent := node.Parent
		var nextDiff int8
		if parent != nil {
			if parent.Left == node {
				nextDiff = 1
			} else {
				nextDiff = -1
			}
		}

		switch node.Balance {
		case -2:
			y := node.Left
			if y.Balance <= 0 {
				t.rotateRight(node)
				if y.Balance == 0 {
					// the subtree is as tall as it was before the removal
					node.SetBalance(-1)
					y.SetBalance(1)
					return
				}
				node.SetBalance(0)
				y.SetBalance(0)
			} else {
				x := y.Right
				xb := x.Balance

				t.rotateLeft(y)
				t.rotateRight(node)

				switch xb {
				case -1:
					node.SetBalance(1)
					y.SetBalance(0)
				case 0:
					node.SetBalance(0)
					y.SetBalance(0)
				case 1:
					node.SetBalance(0)
					y.SetBalance(-1)
				}
				x.SetBalance(0)
			}
		case 2:
			y := node.Right
			if y.Balance >= 0 {
				t.rotateLeft(node)
				if y.Balance == 0 {
					node.SetBalance(1)
					y.SetBalance(-1)
					return
				}
				node.SetBalance(0)
				y.SetBalance(0)
			} else {
				x := y.Left
				xb := x.Balance

				t.rotateRight(y)
				t.rotateLeft(node)

				switch xb {
				case 1:
					node.SetBalance(-1)
					y.SetBalance(0)
				case 0:
					node.SetBalance(0)
					y.SetBalance(0)
				case -1:
					node.SetBalance(0)
					y.SetBalance(1)
				}
				x.SetBalance(0)
			}
		case 0:
			// shorter by one, keep going
		default:
			// -1 or 1: was level before, so the height is unchanged
			return
		}

		node, diff = parent, nextDiff
	}
}
