package avl

import (
	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/binary"
	"go.lepak.sg/trees/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree mapping keys to values.
// The zero Tree may be used immediately. Tree should not be passed
// around as a value.
type Tree[K constraints.Ordered, V any] struct {
	bst binary.Tree[K, V]
}

func (t *Tree[_, _]) Len() int {
	return t.bst.Len()
}

// Get returns the value stored under k.
// If k is not in the tree, ok is false.
func (t *Tree[K, V]) Get(k K) (v V, ok bool) {
	return t.bst.Get(k)
}

func (t *Tree[K, V]) Contains(k K) bool {
	return t.bst.Contains(k)
}

// Less returns the largest key in the tree that is less than k.
func (t *Tree[K, V]) Less(k K) (K, bool) {
	return t.bst.Less(k)
}

func (t *Tree[K, V]) Min() (K, V, bool) {
	return t.bst.Min()
}

func (t *Tree[K, V]) Max() (K, V, bool) {
	return t.bst.Max()
}

// Height returns the actual height of the tree, recomputed from
// scratch, and the height of a perfectly balanced tree of the same size.
func (t *Tree[_, _]) Height() (actual, ideal int) {
	return t.bst.Height()
}

// EqualPaths returns true if every leaf is at the same depth.
func (t *Tree[_, _]) EqualPaths() bool {
	return t.bst.EqualPaths()
}

func (t *Tree[K, V]) InOrder(f func(k K, v V) bool) {
	t.bst.InOrder(f)
}

func (t *Tree[K, V]) PreOrder(f func(k K, v V) bool) {
	t.bst.PreOrder(f)
}

func (t *Tree[K, V]) InOrderIterator() *iterator.InOrder[K, V] {
	return t.bst.InOrderIterator()
}

func (t *Tree[K, V]) InOrderReverseIterator() *iterator.InOrderReverse[K, V] {
	return t.bst.InOrderReverseIterator()
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// See binary.Tree.InOrderCoroutine.
func (t *Tree[K, V]) InOrderCoroutine() iterator.Coroutine[K, V] {
	return t.bst.InOrderCoroutine()
}

func (t *Tree[_, _]) String() string {
	return t.bst.String()
}

func (t *Tree[K, V]) rotateLeft(n *tree.Node[K, V]) {
	t.bst.RotateLeft(n)
}

func (t *Tree[K, V]) rotateRight(n *tree.Node[K, V]) {
	t.bst.RotateRight(n)
}

// nodeSwap makes n1 and n2 trade places, taking their balances with
// them so that each position keeps its balance.
func (t *Tree[K, V]) nodeSwap(n1, n2 *tree.Node[K, V]) {
	t.bst.Swap(n1, n2)
	n1.Balance, n2.Balance = n2.Balance, n1.Balance
}
