package avl

import (
	"go.lepak.sg/trees/tree"
)

// Insert inserts k into the tree with value v and rebalances.
// If k is already in the tree, only its value is overwritten, the
// shape of the tree does not change, and Insert returns false.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	n, created := t.bst.InsertNode(k, v)
	if !created {
		return false
	}

	parent := n.Parent
	if parent == nil {
		return true
	}

	// The slot n went into was empty, so parent was either a leaf
	// (balance 0) or leaning towards its other child. In the second
	// case parent is now level and its height did not change.
	if parent.Left == n {
		parent.UpdateBalance(-1)
	} else {
		parent.UpdateBalance(1)
	}

	if parent.Balance != 0 {
		t.insertFix(parent, n)
	}

	return true
}

// insertFix is called when the subtree rooted at parent has grown
// taller by one, and node is the child of parent on the taller side.
// It walks upwards adjusting balances until the growth is absorbed,
// or rotates once to absorb it.
func (t *Tree[K, V]) insertFix(parent, node *tree.Node[K, V]) {
	grand := parent.Parent
	if grand == nil {
		return
	}

	if parent == grand.Left {
		grand.UpdateBalance(-1)

		switch grand.Balance {
		case 0:
			return
		case -1:
			t.insertFix(grand, parent)
		case -2:
			if node == parent.Left {
				// left-left
				t.rotateRight(grand)
				parent.SetBalance(0)
				grand.SetBalance(0)
				return
			}

			// left-right
			child := node
			cb := child.Balance

			t.rotateLeft(parent)
			t.rotateRight(grand)

			switch cb {
			case -1:
				parent.SetBalance(0)
				grand.SetBalance(1)
			case 0:
				parent.SetBalance(0)
				grand.SetBalance(0)
			case 1:
				parent.SetBalance(-1)
				grand.SetBalance(0)
			}
			child.SetBalance(0)
		}
		return
	}

	grand.UpdateBalance(1)

	switch grand.Balance {
	case 0:
		return
	case 1:
		t.insertFix(grand, parent)
	case 2:
		if node == parent.Right {
			// right-right
			t.rotateLeft(grand)
			parent.SetBalance(0)
			grand.SetBalance(0)
			return
		}

		// right-left
		child := node
		cb := child.Balance

		t.rotateRight(parent)
		t.rotateLeft(grand)

		switch cb {
		case 1:
			parent.SetBalance(0)
			grand.SetBalance(-1)
		case 0:
			parent.SetBalance(0)
			grand.SetBalance(0)
		case -1:
			parent.SetBalance(1)
			grand.SetBalance(0)
		}
		child.SetBalance(0)
	}
}
