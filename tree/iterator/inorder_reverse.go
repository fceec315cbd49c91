package iterator

import (
	"go.lepak.sg/trees/tree"
)

var _ EntryIterator[int, any] = (*InOrderReverse[int, any])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[K, V any] struct {
	root, at *tree.Node[K, V]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[K, V any](root *tree.Node[K, V]) *InOrderReverse[K, V] {
	return &InOrderReverse[K, V]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[K, V]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == nil {
		i.at = i.root.Max()
		return i.at != nil
	}

	i.at = i.at.Predecessor()
	return i.at != nil
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[K, _]) Item() K {
	return i.at.Key
}

// Value returns the value stored with the current key.
func (i *InOrderReverse[_, V]) Value() V {
	return i.at.Value
}
