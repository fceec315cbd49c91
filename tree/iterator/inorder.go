package iterator

import (
	"go.lepak.sg/trees/tree"
)

var _ EntryIterator[int, string] = (*InOrder[int, string])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k, v := i.Item(), i.Value()
//		... do stuff with k and v ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[K, V any] struct {
	root, at *tree.Node[K, V]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[K, V any](root *tree.Node[K, V]) *InOrder[K, V] {
	return &InOrder[K, V]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[K, V]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil {
		return false
	}

	if i.at == nil {
		// If Next returned false, calling Next again starts over
		// from the first key.
		i.at = i.root.Min()
		return i.at != nil
	}

	i.at = i.at.Successor()
	return i.at != nil
}

// Item returns the current key of the iterator.
func (i *InOrder[K, _]) Item() K {
	return i.at.Key
}

// Value returns the value stored with the current key.
func (i *InOrder[_, V]) Value() V {
	return i.at.Value
}
