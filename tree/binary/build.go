package binary

import (
	"math/rand"
)

// shuffled returns the keys [0, num) in an order decided by rd.
func shuffled(rd *rand.Rand, num int) []int {
	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// Each value is the order in which its key was inserted.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int, int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int, int]{}
	for i, k := range shuffled(rd, num) {
		tr.Insert(k, i)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes
// by retrying random insert orders until one happens to come out
// balanced. It is only practical for small trees.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
func BuildRandomBalanced(num int, seed int64) (*Tree[int, int], int) {
	// TODO: Accept context or attempt limit, and return error as well
	rd := rand.New(rand.NewSource(seed))

	var tr *Tree[int, int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		attempts++

		tr = &Tree[int, int]{}
		for i, k := range shuffled(rd, num) {
			tr.Insert(k, i)
		}
	}

	return tr, attempts
}
