// Package service owns the ordered set and is the only write entry
// point into it. It serialises access to the tree, stamps every
// committed mutation with a sequence number and records it in the
// outbox, decoupled from network transports like gRPC.
package service
