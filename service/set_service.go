package service

import (
	"fmt"
	"sync"

	"github.com/bnclabs/golog"
	humanize "github.com/dustin/go-humanize"

	"rbtree/domain/rbtree"
	"rbtree/infra/feed"
	"rbtree/infra/outbox"
	"rbtree/infra/sequence"
)

/*
SetService is the ONLY entry point into the tree.

The tree itself does no locking; every call here holds mu for its
whole duration. A mutation is recorded in the outbox before it is
applied, so a failed append leaves the set untouched.
*/
type SetService struct {
	mu     sync.Mutex
	tree   *rbtree.Tree[int64]
	seq    *sequence.Sequencer
	outbox *outbox.Outbox // nil when the change feed is off
}

// NewSetService wires the service. ob may be nil.
func NewSetService(
	tree *rbtree.Tree[int64],
	seq *sequence.Sequencer,
	ob *outbox.Outbox,
) *SetService {
	return &SetService{
		tree:   tree,
		seq:    seq,
		outbox: ob,
	}
}

// -------------------- Commands --------------------

// Insert adds key. It reports whether the set changed and, if so, the
// sequence number of the change.
func (s *SetService) Insert(key int64) (bool, uint64, error) {
	return s.mutate(feed.EventInsert, key)
}

// Remove deletes key. It reports whether the set changed and, if so,
// the sequence number of the change.
func (s *SetService) Remove(key int64) (bool, uint64, error) {
	return s.mutate(feed.EventRemove, key)
}

func (s *SetService) mutate(typ feed.EventType, key int64) (bool, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	present := s.tree.Contains(key)
	if present == (typ == feed.EventInsert) {
		return false, 0, nil
	}

	seq := s.seq.Next()
	if s.outbox != nil {
		if err := s.outbox.Append(feed.NewEvent(typ, key, seq)); err != nil {
			log.Errorf("[service] outbox append seq=%d: %v\n", seq, err)
			return false, 0, fmt.Errorf("record %s %d: %w", typ, key, err)
		}
	}

	switch typ {
	case feed.EventInsert:
		s.tree.Insert(key)
	case feed.EventRemove:
		s.tree.Remove(key)
	}
	log.Tracef("[service] %s key=%d seq=%d\n", typ, key, seq)
	return true, seq, nil
}

// -------------------- Queries --------------------

func (s *SetService) Contains(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Contains(key)
}

func (s *SetService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

// Validate runs the full invariant check.
func (s *SetService) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.IsValid()
}

// Render returns the diagnostic dump of the tree.
func (s *SetService) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.String()
}

// Keys returns a copy of the keys in ascending order.
func (s *SetService) Keys() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]int64, 0, s.tree.Len())
	for k := range s.tree.All() {
		keys = append(keys, k)
	}
	return keys
}

// LastSeq returns the sequence number of the latest committed change.
func (s *SetService) LastSeq() uint64 {
	return s.seq.Current()
}

func (s *SetService) Stats() rbtree.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Stats()
}

// LogStats writes the current tree statistics to the log.
func (s *SetService) LogStats() {
	st := s.Stats()
	log.Infof(
		"[service] keys=%s height=%d black-height=%d slots=%s free=%s nodes=%s seq=%d\n",
		humanize.Comma(int64(st.Len)),
		st.Height,
		st.BlackHeight,
		humanize.Comma(int64(st.Slots)),
		humanize.Comma(int64(st.Available)),
		humanize.Bytes(uint64(st.NodeBytes)),
		s.LastSeq(),
	)
	if st.BlackHeight < 0 {
		log.Errorf("[service] red-black invariants broken\n")
	}
}
