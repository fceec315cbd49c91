package tree

// Swap relinks a and b so that they trade places in the tree.
// Keys and values stay with their nodes, so after the swap the
// ordering invariant is usually broken until the caller removes one
// of them. Balance is not exchanged either: callers that keep balances
// must swap those themselves.
// a and b may be adjacent (one is the parent of the other) or siblings.
func Swap[K, V any](a, b *Node[K, V]) {
	if a == nil || b == nil {
		panic("cannot Swap nil")
	}

	if a == b {
		return
	}

	// If they are adjacent, make sure b is the parent.
	if b.Parent == a {
		a, b = b, a
	}

	aParent, aLeft, aRight, aIsLeft := a.Parent, a.Left, a.Right, a.IsLeft()
	bParent, bLeft, bRight, bIsLeft := b.Parent, b.Left, b.Right, b.IsLeft()

	// a goes where b was
	a.Parent = bParent
	if bParent != nil {
		if bIsLeft {
			bParent.Left = a
		} else {
			bParent.Right = a
		}
	}

	if aParent == b {
		b.Parent = a
		if aIsLeft {
			a.Left, a.Right = b, bRight
			if bRight != nil {
				bRight.Parent = a
			}
		} else {
			a.Left, a.Right = bLeft, b
			if bLeft != nil {
				bLeft.Parent = a
			}
		}
	} else {
		// b goes where a was
		b.Parent = aParent
		if aParent != nil {
			if aIsLeft {
				aParent.Left = b
			} else {
				aParent.Right = b
			}
		}

		a.Left, a.Right = bLeft, bRight
		if bLeft != nil {
			bLeft.Parent = a
		}
		if bRight != nil {
			bRight.Parent = a
		}
	}

	b.Left, b.Right = aLeft, aRight
	if aLeft != nil {
		aLeft.Parent = b
	}
	if aRight != nil {
		aRight.Parent = b
	}
}
