// Package outbox keeps change events that still have to reach the feed.
//
// Events are written under "event/<seq>" keys in a pebble store, so a
// scan returns them in sequence order. The broadcaster acknowledges an
// event by deleting it once the publisher has accepted it. The highest
// acknowledged sequence number is kept under "meta/acked" so numbering
// survives a restart with nothing pending.
package outbox

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"rbtree/infra/feed"
)

const (
	keyPrefix = "event/"
	ackedKey  = "meta/acked"
)

var ErrClosed = errors.New("outbox: closed")

type Config struct {
	// Dir holds the pebble store. Empty keeps the store in memory.
	Dir string
	// Sync forces every append to stable storage before it returns.
	Sync bool
}

type Outbox struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
}

func Open(cfg Config) (*Outbox, error) {
	opts := &pebble.Options{}
	dir := cfg.Dir
	if dir == "" {
		opts.FS = vfs.NewMem()
		dir = "outbox"
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("outbox: open %q: %w", dir, err)
	}
	wo := pebble.NoSync
	if cfg.Sync {
		wo = pebble.Sync
	}
	return &Outbox{db: db, writeOpts: wo}, nil
}

func (o *Outbox) Close() error {
	if o.db == nil {
		return ErrClosed
	}
	err := o.db.Close()
	o.db = nil
	return err
}

// -------------------- API --------------------

// Append stores e until it is acknowledged.
func (o *Outbox) Append(e feed.Event) error {
	if o.db == nil {
		return ErrClosed
	}
	val, err := e.Encode()
	if err != nil {
		return err
	}
	return o.db.Set(keyFor(e.Seq), val, o.writeOpts)
}

// Ack drops the events with the given sequence numbers and raises the
// acknowledged high-water mark. Acks must come from a single drainer.
func (o *Outbox) Ack(seqs ...uint64) error {
	if o.db == nil {
		return ErrClosed
	}
	if len(seqs) == 0 {
		return nil
	}
	hwm, err := o.acked()
	if err != nil {
		return err
	}

	b := o.db.NewBatch()
	defer b.Close()
	for _, seq := range seqs {
		if err := b.Delete(keyFor(seq), nil); err != nil {
			return err
		}
		hwm = max(hwm, seq)
	}
	val := binary.BigEndian.AppendUint64(nil, hwm)
	if err := b.Set([]byte(ackedKey), val, nil); err != nil {
		return err
	}
	return b.Commit(o.writeOpts)
}

// ScanPending calls fn for up to limit pending events in sequence order.
// A limit <= 0 scans everything. Returning an error from fn stops the
// scan and returns that error.
func (o *Outbox) ScanPending(limit int, fn func(feed.Event) error) error {
	if o.db == nil {
		return ErrClosed
	}
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd(),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	n := 0
	for iter.First(); iter.Valid(); iter.Next() {
		if limit > 0 && n == limit {
			break
		}
		e, err := feed.Decode(iter.Value())
		if err != nil {
			return fmt.Errorf("outbox: key %x: %w", iter.Key(), err)
		}
		if err := fn(e); err != nil {
			return err
		}
		n++
	}
	return iter.Error()
}

// Pending counts the events not yet acknowledged.
func (o *Outbox) Pending() (int, error) {
	n := 0
	err := o.ScanPending(0, func(feed.Event) error {
		n++
		return nil
	})
	return n, err
}

// LastSeq returns the highest sequence number the outbox has seen,
// pending or acknowledged. 0 means none.
func (o *Outbox) LastSeq() (uint64, error) {
	if o.db == nil {
		return 0, ErrClosed
	}
	hwm, err := o.acked()
	if err != nil {
		return 0, err
	}

	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd(),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	if !iter.Last() {
		return hwm, iter.Error()
	}
	last, err := parseKey(iter.Key())
	if err != nil {
		return 0, err
	}
	return max(hwm, last), nil
}

// -------------------- Helpers --------------------

func (o *Outbox) acked() (uint64, error) {
	val, closer, err := o.db.Get([]byte(ackedKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	defer closer.Close()
	if len(val) != 8 {
		return 0, fmt.Errorf("outbox: bad %s value %x", ackedKey, val)
	}
	return binary.BigEndian.Uint64(val), nil
}

// keys are big-endian so byte order equals sequence order
func keyFor(seq uint64) []byte {
	k := make([]byte, len(keyPrefix)+8)
	copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[len(keyPrefix):], seq)
	return k
}

func parseKey(k []byte) (uint64, error) {
	if len(k) != len(keyPrefix)+8 || string(k[:len(keyPrefix)]) != keyPrefix {
		return 0, fmt.Errorf("outbox: bad key %x", k)
	}
	return binary.BigEndian.Uint64(k[len(keyPrefix):]), nil
}

func prefixEnd() []byte {
	end := []byte(keyPrefix)
	end[len(end)-1]++
	return end
}
