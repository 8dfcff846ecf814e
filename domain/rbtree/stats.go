package rbtree

import "unsafe"

// Stats is a point-in-time summary of a tree's shape and storage.
type Stats struct {
	Len         int
	Height      int
	BlackHeight int
	Slots       int   // arena slots ever allocated
	Available   int   // freed slots waiting for reuse
	NodeBytes   int64 // approximate bytes held by node slots
}

// Stats walks the tree and reports its shape.
func (t *Tree[K]) Stats() Stats {
	var n node[K]
	return Stats{
		Len:         t.Len(),
		Height:      t.Height(),
		BlackHeight: t.BlackHeight(),
		Slots:       t.nodes.Slots(),
		Available:   t.nodes.Available(),
		NodeBytes:   int64(t.nodes.Slots()) * int64(unsafe.Sizeof(n)),
	}
}
