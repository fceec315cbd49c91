package avl

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"
)

// BuildRandom builds an AVL tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// Each value is the order in which its key was inserted.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int, int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int, int]{}
	for i, k := range rd.Perm(num) {
		tr.Insert(k, i)
	}

	return tr
}

// Churn inserts the keys [0, num) into an empty tree in a random order,
// then removes them all in another random order. The tree is checked
// after every operation, and Churn returns the first problem found.
// The seed for both orders is a parameter, so a failing run can be
// repeated exactly.
func Churn(num int, seed int64) error {
	rd := rand.New(rand.NewSource(seed))
	tr := &Tree[int, int]{}

	for i, k := range rd.Perm(num) {
		if !tr.Insert(k, i) {
			return fmt.Errorf("insert %d: reported as duplicate", k)
		}
		if err := tr.Check(); err != nil {
			return fmt.Errorf("insert %d: %w", k, err)
		}
	}

	keys := make([]int, 0, num)
	tr.InOrder(func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	if len(keys) != num || !slices.IsSorted(keys) {
		return fmt.Errorf("after inserting: in-order keys %v", keys)
	}

	for _, k := range rd.Perm(num) {
		if !tr.Remove(k) {
			return fmt.Errorf("remove %d: not found", k)
		}
		if tr.Contains(k) {
			return fmt.Errorf("remove %d: still there", k)
		}
		if err := tr.Check(); err != nil {
			return fmt.Errorf("remove %d: %w", k, err)
		}
	}

	if tr.Len() != 0 || tr.bst.Root() != nil {
		return fmt.Errorf("after removing everything: %d keys left", tr.Len())
	}

	return nil
}
