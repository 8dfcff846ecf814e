// Package sequence hands out the ordering numbers stamped on change
// events.
package sequence

import "sync/atomic"

// Sequencer issues strictly increasing sequence numbers. The first
// number issued after New(start) is start+1.
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer that resumes after start. A fresh service
// starts from 0; a service resuming after its outbox starts from the
// highest sequence still pending there.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued number, 0 if none was issued.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}
