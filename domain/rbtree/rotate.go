package rbtree

import "rbtree/infra/memory"

// rotateLeft lifts x's right child into x's place.
func (t *Tree[K]) rotateLeft(x memory.Ref) {
	xn := t.n(x)
	y := xn.right
	if y == memory.Nil {
		panic("rbtree: rotateLeft without right child")
	}
	yn := t.n(y)

	xn.right = yn.left
	if yn.left != memory.Nil {
		t.n(yn.left).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

// rotateRight lifts x's left child into x's place.
func (t *Tree[K]) rotateRight(x memory.Ref) {
	xn := t.n(x)
	y := xn.left
	if y == memory.Nil {
		panic("rbtree: rotateRight without left child")
	}
	yn := t.n(y)

	xn.left = yn.right
	if yn.right != memory.Nil {
		t.n(yn.right).parent = x
	}
	yn.parent = xn.parent
	t.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// replaceChild points parent's link to old at repl instead. A Nil parent
// means old was the root.
func (t *Tree[K]) replaceChild(parent, old, repl memory.Ref) {
	if parent == memory.Nil {
		t.root = repl
		return
	}
	p := t.n(parent)
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}
