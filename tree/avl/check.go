package avl

import (
	"errors"
	"fmt"
	"math"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

var (
	ErrParent     = errors.New("avl: broken parent link")
	ErrOrder      = errors.New("avl: keys out of order")
	ErrBalance    = errors.New("avl: stored balance does not match heights")
	ErrUnbalanced = errors.New("avl: node is too lopsided")
	ErrCount      = errors.New("avl: node count does not match length")
	ErrHeight     = errors.New("avl: tree is taller than an AVL tree can be")
)

// MaxHeight returns the greatest height an AVL tree with n keys can have.
func MaxHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

// Check walks the whole tree and recomputes every subtree height
// instead of trusting the stored balances. It returns nil if all of
// the tree's invariants hold, otherwise an error wrapping one of the
// Err* values above and describing the first problem found.
func (t *Tree[K, V]) Check() error {
	root := t.bst.Root()
	if root != nil && root.Parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrParent, root.Key, root.Parent.Key)
	}

	c := checker[K, V]{}
	height, err := c.visit(root)
	if err != nil {
		return err
	}

	if c.count != t.Len() {
		return fmt.Errorf("%w: found %d nodes, Len is %d", ErrCount, c.count, t.Len())
	}

	if limit := MaxHeight(c.count); height > limit {
		return fmt.Errorf("%w: height %d with %d nodes, at most %d", ErrHeight, height, c.count, limit)
	}

	return nil
}

type checker[K constraints.Ordered, V any] struct {
	count int
	// last node seen in-order
	prev *tree.Node[K, V]
}

// visit checks the subtree rooted at n in-order and returns its height.
func (c *checker[K, V]) visit(n *tree.Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}

	for _, child := range []*tree.Node[K, V]{n.Left, n.Right} {
		if child != nil && child.Parent != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrParent, child.Key, n.Key)
		}
	}

	l, err := c.visit(n.Left)
	if err != nil {
		return 0, err
	}

	if c.prev != nil && tree.Compare(c.prev.Key, n.Key) != tree.Less {
		return 0, fmt.Errorf("%w: %v then %v", ErrOrder, c.prev.Key, n.Key)
	}
	c.prev = n
	c.count++

	r, err := c.visit(n.Right)
	if err != nil {
		return 0, err
	}

	if int(n.Balance) != r-l {
		return 0, fmt.Errorf("%w: node %v has %d, heights are left %d right %d",
			ErrBalance, n.Key, n.Balance, l, r)
	}

	if r-l > 1 || l-r > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %d", ErrUnbalanced, n.Key, r-l)
	}

	if l > r {
		return l + 1, nil
	}
	return r + 1, nil
}
