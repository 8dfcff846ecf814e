package rbtree

import "rbtree/infra/memory"

// Insert adds key to the tree. It returns false, leaving the tree
// untouched, when the key is already present.
func (t *Tree[K]) Insert(key K) bool {
	parent := memory.Nil
	x := t.root
	less := false
	for x != memory.Nil {
		n := t.n(x)
		switch {
		case key < n.key:
			parent, x, less = x, n.left, true
		case key > n.key:
			parent, x, less = x, n.right, false
		default:
			return false
		}
	}

	z := t.nodes.Alloc()
	*t.n(z) = node[K]{key: key, parent: parent}

	if parent == memory.Nil {
		// first node of an empty tree goes in black
		t.root = z
		t.setBlack(z)
		return true
	}
	if less {
		t.n(parent).left = z
	} else {
		t.n(parent).right = z
	}
	t.setRed(z)
	t.insertFixup(z)
	return true
}

// insertFixup restores the red rule after z was attached red.
func (t *Tree[K]) insertFixup(z memory.Ref) {
	for {
		parent := t.n(z).parent
		if parent == memory.Nil {
			t.setBlack(z)
			return
		}
		if !t.isRed(parent) {
			return
		}

		// a red parent is never the root, so grand exists and is black
		grand := t.n(parent).parent
		g := t.n(grand)
		uncle := g.left
		if uncle == parent {
			uncle = g.right
		}

		if t.isRed(uncle) {
			t.setBlack(parent)
			t.setBlack(uncle)
			t.setRed(grand)
			z = grand
			continue
		}

		// zig-zag: turn it into a straight line first
		if parent == g.left && z == t.n(parent).right {
			t.rotateLeft(parent)
			z = parent
		} else if parent == g.right && z == t.n(parent).left {
			t.rotateRight(parent)
			z = parent
		}

		parent = t.n(z).parent
		grand = t.n(parent).parent
		if z == t.n(parent).left {
			t.rotateRight(grand)
		} else {
			t.rotateLeft(grand)
		}
		t.setBlack(parent)
		t.setRed(grand)
		return
	}
}
