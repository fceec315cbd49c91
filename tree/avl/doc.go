// Package avl implements an AVL tree: a binary search tree that keeps
// itself height-balanced by rotating after every insertion or removal.
//
// Every node carries a balance factor, the height of its right subtree
// minus the height of its left subtree. Between calls to Insert and
// Remove, every balance factor is -1, 0 or 1, which bounds the height
// of a tree with n keys by about 1.44 log2(n+2).
//
// The tree is built on binary.Tree, which provides lookups, traversal,
// iteration and the node surgery (attach, unlink, swap, rotate) that
// the rebalancing code is written in terms of.
//
// A Tree is not safe for concurrent use if any goroutine is writing.
package avl
