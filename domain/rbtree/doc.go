// Package rbtree implements an ordered key set on a red-black tree.
//
// Nodes live in a memory.Arena and link to each other through arena
// references, colors live in a bitset indexed by the same references.
// Insert and Remove rebalance by rotation and recoloring so that every
// root-to-leaf path carries the same number of black nodes, which keeps
// lookup, insertion and deletion logarithmic.
//
// A Tree is single-writer: it performs no locking and callers that share
// one across goroutines must serialise access themselves.
package rbtree
