package memory

// Ref addresses a slot inside an Arena. The zero Ref is Nil and never
// refers to a live slot.
type Ref uint32

// Nil is the absent reference.
const Nil Ref = 0

// Arena is a typed slab of T values addressed by Ref.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []T
	free  []Ref
}

// NewArena returns an arena with room for capacity values before it
// has to grow.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	// slot 0 backs Nil and is never handed out
	return &Arena[T]{slots: make([]T, 1, capacity+1)}
}

// Alloc returns a zeroed slot. Pointers obtained from At before an
// Alloc may be invalidated when the arena grows.
func (a *Arena[T]) Alloc() Ref {
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]
		return r
	}
	if uint64(len(a.slots)) > uint64(^Ref(0)) {
		panic("memory.Arena: exhausted")
	}
	var zero T
	a.slots = append(a.slots, zero)
	return Ref(len(a.slots) - 1)
}

// Free zeroes the slot and queues it for reuse.
func (a *Arena[T]) Free(r Ref) {
	if r == Nil || int(r) >= len(a.slots) {
		panic("memory.Arena: Free of invalid ref")
	}
	var zero T
	a.slots[r] = zero
	a.free = append(a.free, r)
}

// At returns the value stored at r.
func (a *Arena[T]) At(r Ref) *T {
	if r == Nil {
		panic("memory.Arena: dereference of Nil ref")
	}
	return &a.slots[r]
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return len(a.slots) - 1 - len(a.free) }

// Slots returns the number of slots ever allocated, live or free.
func (a *Arena[T]) Slots() int { return len(a.slots) - 1 }

// Available returns the number of freed slots waiting for reuse.
func (a *Arena[T]) Available() int { return len(a.free) }

// Reset releases every slot at once. Backing storage is kept.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:1]
	a.free = a.free[:0]
}
