package broadcaster

import (
	"context"
	"time"

	"github.com/bnclabs/golog"

	"rbtree/infra/feed"
	"rbtree/infra/outbox"
)

// Broadcaster drains the outbox into a feed.Publisher. Events are
// acked only after the publisher accepted the whole batch, so a failed
// round is retried on the next tick (at-least-once delivery).
type Broadcaster struct {
	outbox    *outbox.Outbox
	publisher feed.Publisher
	tick      time.Duration
	batch     int
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	ob *outbox.Outbox,
	publisher feed.Publisher,
	tick time.Duration,
	batch int,
) *Broadcaster {
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	if batch <= 0 {
		batch = 256
	}
	return &Broadcaster{
		outbox:    ob,
		publisher: publisher,
		tick:      tick,
		batch:     batch,
	}
}

// ------------------------------------------------
// LOOP
// ------------------------------------------------

// Run blocks until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Infof("[broadcaster] started tick=%v batch=%d\n", b.tick, b.batch)
	defer log.Infof("[broadcaster] stopped\n")

	ticker := time.NewTicker(b.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drain(ctx)
		}
	}
}

// drain replays full batches until the backlog is gone, a round fails
// or ctx is done.
func (b *Broadcaster) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := b.replayOnce(ctx)
		if err != nil {
			log.Errorf("[broadcaster] replay: %v\n", err)
			return
		}
		// a full batch means more may be waiting
		if n < b.batch {
			return
		}
	}
}

// ------------------------------------------------
// REPLAY
// ------------------------------------------------

// replayOnce publishes up to one batch of pending events and acks
// them. It returns the number of events delivered.
func (b *Broadcaster) replayOnce(ctx context.Context) (int, error) {
	events := make([]feed.Event, 0, b.batch)
	err := b.outbox.ScanPending(b.batch, func(e feed.Event) error {
		events = append(events, e)
		return nil
	})
	if err != nil || len(events) == 0 {
		return 0, err
	}

	if err := b.publisher.Publish(ctx, events); err != nil {
		return 0, err
	}

	seqs := make([]uint64, len(events))
	for i, e := range events {
		seqs[i] = e.Seq
	}
	if err := b.outbox.Ack(seqs...); err != nil {
		return 0, err
	}
	log.Debugf("[broadcaster] delivered seq %d..%d\n", seqs[0], seqs[len(seqs)-1])
	return len(events), nil
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.publisher.Close()
}
