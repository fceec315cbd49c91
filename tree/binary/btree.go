package binary

import (
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/iterator"
	"go.lepak.sg/trees/tree/paths"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree mapping keys to values. It is safe for
// concurrent reads (searching, iterating, etc) but not for concurrent
// reads and writes (inserting, removing).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree implementation is not self-balancing. Other tree kinds
// (see package avl) are built on top of it using the node plumbing
// methods in plumbing.go.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[K constraints.Ordered, V any] struct {
	// the tree is rooted here.
	// don't return nodes to clients - they could mutate keys or children!
	root  *tree.Node[K, V]
	count int
}

// Len returns the number of keys in the tree.
func (t *Tree[_, _]) Len() int {
	return t.count
}

// Get returns the value stored under k.
// If k is not in the tree, ok is false.
func (t *Tree[K, V]) Get(k K) (v V, ok bool) {
	n := t.Find(k)
	if n == nil {
		return
	}
	return n.Value, true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[K, V]) Contains(k K) bool {
	return t.Find(k) != nil
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero K and ok is false.
func (t *Tree[K, V]) Less(k K) (p K, ok bool) {
	// Find the node where k would be inserted to,
	// or the node whose key = k,
	// then find the previous node.

	// https://courses.csail.mit.edu/6.006/fall11/rec/rec05.pdf
	parent, c := t.descend(k)
	if parent == nil {
		return
	}

	less := parent
	if c != tree.Greater {
		less = parent.Predecessor()
		if less == nil {
			return
		}
	}

	return less.Key, true
}

// Min returns the smallest key in the tree and its value.
// ok is false if the tree is empty.
func (t *Tree[K, V]) Min() (k K, v V, ok bool) {
	n := t.root.Min()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}

// Max returns the largest key in the tree and its value.
// ok is false if the tree is empty.
func (t *Tree[K, V]) Max() (k K, v V, ok bool) {
	n := t.root.Max()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}

// Insert inserts k into the binary tree with value v.
// If k is already in the tree, its value is overwritten
// and Insert returns false.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	_, created := t.InsertNode(k, v)
	return created
}

// Remove removes k from the tree. If k was not in the tree,
// nothing happens and Remove returns false.
// A node with two children first trades places with its in-order
// predecessor, so the node that is finally unlinked never has
// more than one child.
func (t *Tree[K, V]) Remove(k K) bool {
	n := t.Find(k)
	if n == nil {
		return false
	}

	if n.Left != nil && n.Right != nil {
		t.Swap(n, n.Predecessor())
	}

	t.Unlink(n)
	return true
}

// Height returns the actual height of the tree, and the
// height it would have if it were perfectly balanced.
func (t *Tree[_, _]) Height() (actual, ideal int) {
	return t.root.Height(), bits.Len(uint(t.count))
}

// Balanced returns true if, at every node, the heights of the left
// and right subtrees differ by at most one.
func (t *Tree[K, V]) Balanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

func balancedHeight[K, V any](n *tree.Node[K, V]) (int, bool) {
	if n == nil {
		return 0, true
	}

	l, ok := balancedHeight(n.Left)
	if !ok {
		return 0, false
	}
	r, ok := balancedHeight(n.Right)
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}

	if l > r {
		return l + 1, true
	}
	return r + 1, true
}

// EqualPaths returns true if every leaf in the tree is at the same depth.
func (t *Tree[K, V]) EqualPaths() bool {
	return paths.Equal(t.root)
}

// InOrder applies f to each key and value in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[K, V]) InOrder(f func(k K, v V) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[K, V any](n *tree.Node[K, V], f func(k K, v V) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key, n.Value) {
		return false
	}

	return visitInOrder(n.Right, f)
}

// PreOrder applies f to each key and value in the tree pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[K, V]) PreOrder(f func(k K, v V) bool) {
	visitPreOrder(t.root, f)
}

func visitPreOrder[K, V any](n *tree.Node[K, V], f func(k K, v V) bool) bool {
	if n == nil {
		return true
	}

	return f(n.Key, n.Value) &&
		visitPreOrder(n.Left, f) &&
		visitPreOrder(n.Right, f)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for e := range co.Entries() {
//		... do stuff with e.Key, e.Value ...
//		if e meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[K, V]) InOrderCoroutine() iterator.Coroutine[K, V] {
	return iterator.NewCoroutine[K, V](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[K, V]) InOrderIterator() *iterator.InOrder[K, V] {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree from largest to smallest.
func (t *Tree[K, V]) InOrderReverseIterator() *iterator.InOrderReverse[K, V] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderStackIterator is like InOrderIterator, but the iterator
// keeps its own stack instead of following parent pointers.
func (t *Tree[K, V]) InOrderStackIterator() *iterator.InOrderStack[K, V] {
	// only a hint, the stack grows if the tree is taller
	return iterator.NewInOrderStack(t.root, bits.Len(uint(t.count)))
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[K, V]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[K, V any](
	sb *strings.Builder, n *tree.Node[K, V], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
