package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p is returned from n.RotateLeft, and it takes n's
// place in n's parent (if any). o may be nil.
// If n has no right child, nothing happens and n is returned.
// Balances are not touched.
func (n *Node[K, V]) RotateLeft() *Node[K, V] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	p := n.Right
	if p == nil {
		return n
	}
	o := p.Left

	n.ReplaceWith(p)

	n.Right = o
	if o != nil {
		o.Parent = n
	}

	p.Left = n
	n.Parent = p

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l is returned from n.RotateRight, and it takes n's
// place in n's parent (if any). m may be nil.
// If n has no left child, nothing happens and n is returned.
// Balances are not touched.
func (n *Node[K, V]) RotateRight() *Node[K, V] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	l := n.Left
	if l == nil {
		return n
	}
	m := l.Right

	n.ReplaceWith(l)

	n.Left = m
	if m != nil {
		m.Parent = n
	}

	l.Right = n
	n.Parent = l

	return l
}

// ReplaceWith points n's parent at r instead of n, and r at n's parent.
// n.Parent itself is left alone, and r may be nil.
func (n *Node[K, V]) ReplaceWith(r *Node[K, V]) {
	parent := n.Parent
	if r != nil {
		r.Parent = parent
	}

	if parent == nil {
		return
	}

	if parent.Left == n {
		parent.Left = r
	} else {
		parent.Right = r
	}
}
