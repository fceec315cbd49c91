package binary

import (
	"go.lepak.sg/trees/tree"
)

// The methods in this file hand out and take raw nodes.
// They are meant to be called by other tree implementations,
// which are responsible for keeping the invariants intact.

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *tree.Node[K, V] {
	return t.root
}

// descend walks down from the root looking for k.
// It returns the node holding k with tree.Equal, or the node under
// which k would be inserted, with the side to insert on.
// parent is nil only if the tree is empty.
func (t *Tree[K, V]) descend(k K) (parent *tree.Node[K, V], cmp tree.Order) {
	n := t.root
	for n != nil {
		parent = n
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return
		default:
			panic("unreachable")
		}
	}

	return
}

// Find returns the node holding k, or nil if there is none.
func (t *Tree[K, V]) Find(k K) *tree.Node[K, V] {
	n, cmp := t.descend(k)
	if n == nil || cmp != tree.Equal {
		return nil
	}
	return n
}

// InsertNode is like Insert, but it returns the node now holding k.
// created is true if the node is a new leaf (with zero balance),
// and false if k was already present and only its value was replaced.
func (t *Tree[K, V]) InsertNode(k K, v V) (n *tree.Node[K, V], created bool) {
	parent, cmp := t.descend(k)
	if parent == nil {
		t.root = tree.NodeOf(k, v)
		t.count = 1
		return t.root, true
	}

	if cmp == tree.Equal {
		parent.Value = v
		return parent, false
	}

	newnode := tree.NodeOf(k, v)
	newnode.Parent = parent

	switch cmp {
	case tree.Less:
		if parent.Left != nil {
			panic("impossible")
		}
		parent.Left = newnode
	case tree.Greater:
		if parent.Right != nil {
			panic("impossible")
		}
		parent.Right = newnode
	default:
		panic("unreachable")
	}

	t.count++
	return newnode, true
}

// Unlink takes n out of the tree, putting its only child (if any)
// in its place. n must not have two children.
// n is left with no parent or children.
func (t *Tree[K, V]) Unlink(n *tree.Node[K, V]) {
	if n.Left != nil && n.Right != nil {
		panic("cannot Unlink node with two children")
	}

	child := n.Left
	if child == nil {
		child = n.Right
	}

	n.ReplaceWith(child)
	if n == t.root {
		t.root = child
	}

	n.Parent, n.Left, n.Right = nil, nil, nil
	t.count--
}

// Swap makes nodes a and b trade places in the tree.
// See tree.Swap.
func (t *Tree[K, V]) Swap(a, b *tree.Node[K, V]) {
	tree.Swap(a, b)

	switch t.root {
	case a:
		t.root = b
	case b:
		t.root = a
	}
}

// RotateLeft rotates n to the left, updating the root if needed,
// and returns the node that took n's place.
// See tree.Node.RotateLeft.
func (t *Tree[K, V]) RotateLeft(n *tree.Node[K, V]) *tree.Node[K, V] {
	r := n.RotateLeft()
	if r.Parent == nil {
		t.root = r
	}
	return r
}

// RotateRight rotates n to the right, updating the root if needed,
// and returns the node that took n's place.
// See tree.Node.RotateRight.
func (t *Tree[K, V]) RotateRight(n *tree.Node[K, V]) *tree.Node[K, V] {
	r := n.RotateRight()
	if r.Parent == nil {
		t.root = r
	}
	return r
}
