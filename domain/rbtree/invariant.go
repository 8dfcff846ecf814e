package rbtree

import "rbtree/infra/memory"

// IsValid checks every red-black law on the whole tree: the root is
// black, no red node has a red child, all paths from a node down to an
// absent child carry the same number of black nodes, keys are in search
// order and parent links agree with child links. It never mutates the
// tree and is meant for tests and diagnostics.
func (t *Tree[K]) IsValid() bool {
	if t.root == memory.Nil {
		return true
	}
	if t.isRed(t.root) || t.n(t.root).parent != memory.Nil {
		return false
	}
	return t.blackCount(t.root, nil, nil) != -1
}

// blackCount returns the black height of the subtree at r, counting the
// absent children as one black node, or -1 once any law is broken below
// r. lo and hi, when set, are the exclusive key bounds r must respect.
func (t *Tree[K]) blackCount(r memory.Ref, lo, hi *K) int {
	if r == memory.Nil {
		return 1
	}
	n := t.n(r)
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return -1
	}
	if t.isRed(r) && (t.isRed(n.left) || t.isRed(n.right)) {
		return -1
	}
	for _, c := range [2]memory.Ref{n.left, n.right} {
		if c != memory.Nil && t.n(c).parent != r {
			return -1
		}
	}

	key := n.key
	left := t.blackCount(n.left, lo, &key)
	if left == -1 {
		return -1
	}
	right := t.blackCount(n.right, &key, hi)
	if right != left {
		return -1
	}
	if t.isRed(r) {
		return left
	}
	return left + 1
}

// BlackHeight returns the number of black nodes on any root-to-leaf path,
// counting the absent leaf. It is 0 for an empty tree and -1 when the
// tree is not valid.
func (t *Tree[K]) BlackHeight() int {
	if t.root == memory.Nil {
		return 0
	}
	if !t.IsValid() {
		return -1
	}
	return t.blackCount(t.root, nil, nil)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K]) Height() int {
	if t.root == memory.Nil {
		return 0
	}
	type frame struct {
		r     memory.Ref
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		n := t.n(f.r)
		if n.left != memory.Nil {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != memory.Nil {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return height
}
