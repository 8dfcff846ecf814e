// Package memory provides the low-level storage primitive used by the
// tree: a typed Arena that hands out stable Ref handles instead of
// pointers and recycles released slots through a free list.
//
// Parent/child relations between arena slots are stored as Refs, so a
// structure built on top of an Arena has no pointer cycles and can be
// released in O(1) with Reset.
package memory
