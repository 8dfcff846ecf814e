package rbtree

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"rbtree/infra/memory"
)

// Color of a tree node.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

type node[K constraints.Ordered] struct {
	key    K
	left   memory.Ref
	right  memory.Ref
	parent memory.Ref
}

// Tree is an ordered set of distinct keys.
type Tree[K constraints.Ordered] struct {
	root  memory.Ref
	nodes *memory.Arena[node[K]]
	red   *bitset.BitSet // bit set = red; absent refs read as black
}

// New returns an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	return NewWithCapacity[K](0)
}

// NewWithCapacity returns an empty tree that can hold n keys before its
// node arena grows.
func NewWithCapacity[K constraints.Ordered](n int) *Tree[K] {
	if n < 0 {
		n = 0
	}
	return &Tree[K]{
		nodes: memory.NewArena[node[K]](n),
		red:   bitset.New(uint(n) + 1),
	}
}

// ---- public API ----

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.nodes.Len() }

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != memory.Nil
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == memory.Nil {
		return zero, false
	}
	return t.n(t.min(t.root)).key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == memory.Nil {
		return zero, false
	}
	return t.n(t.max(t.root)).key, true
}

// Clear removes every key. Node storage is released in one step, there
// is no per-node teardown.
func (t *Tree[K]) Clear() {
	t.nodes.Reset()
	t.red.ClearAll()
	t.root = memory.Nil
}

// ---- walkers ----

// All yields the keys in ascending order. The tree must not be mutated
// while the sequence is being consumed.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == memory.Nil {
			return
		}
		for r := t.min(t.root); r != memory.Nil; r = t.next(r) {
			if !yield(t.n(r).key) {
				return
			}
		}
	}
}

// Backward yields the keys in descending order.
func (t *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == memory.Nil {
			return
		}
		for r := t.max(t.root); r != memory.Nil; r = t.prev(r) {
			if !yield(t.n(r).key) {
				return
			}
		}
	}
}

// ---- internal helpers ----

func (t *Tree[K]) n(r memory.Ref) *node[K] { return t.nodes.At(r) }

func (t *Tree[K]) isRed(r memory.Ref) bool { return t.red.Test(uint(r)) }

func (t *Tree[K]) color(r memory.Ref) Color {
	if t.isRed(r) {
		return Red
	}
	return Black
}

func (t *Tree[K]) setRed(r memory.Ref) { t.red.Set(uint(r)) }

func (t *Tree[K]) setBlack(r memory.Ref) { t.red.Clear(uint(r)) }

func (t *Tree[K]) setColor(r memory.Ref, c Color) { t.red.SetTo(uint(r), c == Red) }

func (t *Tree[K]) find(key K) memory.Ref {
	r := t.root
	for r != memory.Nil {
		n := t.n(r)
		switch {
		case key < n.key:
			r = n.left
		case key > n.key:
			r = n.right
		default:
			return r
		}
	}
	return memory.Nil
}

func (t *Tree[K]) min(r memory.Ref) memory.Ref {
	for l := t.n(r).left; l != memory.Nil; l = t.n(r).left {
		r = l
	}
	return r
}

func (t *Tree[K]) max(r memory.Ref) memory.Ref {
	for rt := t.n(r).right; rt != memory.Nil; rt = t.n(r).right {
		r = rt
	}
	return r
}

func (t *Tree[K]) next(r memory.Ref) memory.Ref {
	if rt := t.n(r).right; rt != memory.Nil {
		return t.min(rt)
	}
	p := t.n(r).parent
	for p != memory.Nil && r == t.n(p).right {
		r = p
		p = t.n(p).parent
	}
	return p
}

func (t *Tree[K]) prev(r memory.Ref) memory.Ref {
	if l := t.n(r).left; l != memory.Nil {
		return t.max(l)
	}
	p := t.n(r).parent
	for p != memory.Nil && r == t.n(p).left {
		r = p
		p = t.n(p).parent
	}
	return p
}

// release drops a detached node.
func (t *Tree[K]) release(r memory.Ref) {
	t.setBlack(r)
	t.nodes.Free(r)
}
