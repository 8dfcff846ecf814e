package rbtree

import "testing"

// FuzzTree_Ops interprets the input as a stream of operations: the low
// bit of each byte picks insert or remove, the rest is the key.
func FuzzTree_Ops(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{10, 14, 6, 8, 11})
	f.Add([]byte{2, 4, 6, 8, 10, 12, 3, 5, 7})

	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := New[byte]()
		present := map[byte]bool{}
		for _, op := range ops {
			k := op >> 1
			if op&1 == 0 {
				if got := tree.Insert(k); got == present[k] {
					t.Fatalf("Insert(%d) = %v with present=%v", k, got, present[k])
				}
				present[k] = true
			} else {
				if got := tree.Remove(k); got != present[k] {
					t.Fatalf("Remove(%d) = %v with present=%v", k, got, present[k])
				}
				delete(present, k)
			}
			if !tree.IsValid() {
				t.Fatalf("invalid after op %d:\n%s", op, tree)
			}
		}
		if tree.Len() != len(present) {
			t.Fatalf("Len() = %d, want %d", tree.Len(), len(present))
		}
		prev := -1
		for k := range tree.All() {
			if int(k) <= prev || !present[k] {
				t.Fatalf("unexpected key %d after %d", k, prev)
			}
			prev = int(k)
		}
	})
}
