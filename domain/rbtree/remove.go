package rbtree

import "rbtree/infra/memory"

// Remove deletes key from the tree. It returns false when the key is not
// present.
func (t *Tree[K]) Remove(key K) bool {
	z := t.find(key)
	if z == memory.Nil {
		return false
	}

	zn := t.n(z)
	if zn.left != memory.Nil && zn.right != memory.Nil {
		// reduce to the 0/1 child case: take over the successor's key and
		// unlink the successor instead
		s := t.min(zn.right)
		zn.key = t.n(s).key
		z, zn = s, t.n(s)
	}

	child := zn.left
	if child == memory.Nil {
		child = zn.right
	}
	parent := zn.parent

	t.replaceChild(parent, z, child)
	if child != memory.Nil {
		t.n(child).parent = parent
	}

	if !t.isRed(z) {
		if t.isRed(child) {
			t.setBlack(child)
		} else {
			// every path through child's position lost one black node
			t.removeFixup(child, parent)
		}
	}
	t.release(z)
	return true
}

// removeFixup repairs the black height of position x under parent, which
// is one black node short. x may be Nil: the deficient position is the
// pair (x, parent), and parent's other child always exists.
func (t *Tree[K]) removeFixup(x, parent memory.Ref) {
	for {
		if parent == memory.Nil {
			t.setBlack(x)
			return
		}

		p := t.n(parent)
		onLeft := p.left == x
		sibling := p.left
		if onLeft {
			sibling = p.right
		}

		if t.isRed(sibling) {
			t.setBlack(sibling)
			t.setRed(parent)
			if onLeft {
				t.rotateLeft(parent)
				sibling = p.right
			} else {
				t.rotateRight(parent)
				sibling = p.left
			}
		}

		s := t.n(sibling)
		if !t.isRed(s.left) && !t.isRed(s.right) {
			t.setRed(sibling)
			if t.isRed(parent) {
				t.setBlack(parent)
				return
			}
			x, parent = parent, p.parent
			continue
		}

		// at least one red nephew; make the far one red
		if onLeft && !t.isRed(s.right) {
			t.setRed(sibling)
			t.setBlack(s.left)
			t.rotateRight(sibling)
			sibling = s.parent
		} else if !onLeft && !t.isRed(s.left) {
			t.setRed(sibling)
			t.setBlack(s.right)
			t.rotateLeft(sibling)
			sibling = s.parent
		}

		t.setColor(sibling, t.color(parent))
		t.setBlack(parent)
		if onLeft {
			t.rotateLeft(parent)
			t.setBlack(t.n(sibling).right)
		} else {
			t.rotateRight(parent)
			t.setBlack(t.n(sibling).left)
		}
		return
	}
}
