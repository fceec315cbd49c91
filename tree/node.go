// Package tree holds the node type shared by the tree implementations
// in this module, along with the pointer surgery (rotations, swaps)
// they are built from.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Balance is only maintained by
// self-balancing trees; the plain binary tree leaves it alone.
// Left and Right are owned by the node. Parent is a back-reference
// used for walking upwards and must point at the node holding this one.
type Node[K, V any] struct {
	Key   K
	Value V
	// Balance is height(Right) - height(Left).
	Balance             int8
	Left, Right, Parent *Node[K, V]
}

func NodeOf[K, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{
		Key:   k,
		Value: v,
	}
}

func (n *Node[_, _]) SetBalance(b int8) {
	n.Balance = b
}

// UpdateBalance adds diff to the balance. There is no clamping.
func (n *Node[_, _]) UpdateBalance(diff int8) {
	n.Balance += diff
}

// IsLeft returns true if n has a parent and is its left child.
func (n *Node[_, _]) IsLeft() bool {
	return n.Parent != nil && n.Parent.Left == n
}

// Min returns the leftmost node in the subtree rooted at n.
func (n *Node[K, V]) Min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node in the subtree rooted at n.
func (n *Node[K, V]) Max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Predecessor returns the node that comes just before n in-order,
// or nil if n is the smallest node in its tree.
func (n *Node[K, V]) Predecessor() *Node[K, V] {
	if n.Left != nil {
		return n.Left.Max()
	}

	var child *Node[K, V]
	for n != nil {
		n, child = n.Parent, n
		if n != nil && n.Right == child {
			return n
		}
	}

	return nil
}

// Successor returns the node that comes just after n in-order,
// or nil if n is the largest node in its tree.
func (n *Node[K, V]) Successor() *Node[K, V] {
	if n.Right != nil {
		return n.Right.Min()
	}

	var child *Node[K, V]
	for n != nil {
		n, child = n.Parent, n
		if n != nil && n.Left == child {
			return n
		}
	}

	return nil
}

// Height counts the nodes on the longest path from n down to a leaf.
// It walks the whole subtree and does not trust Balance.
// The height of a nil node is 0.
func (n *Node[_, _]) Height() int {
	if n == nil {
		return 0
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
