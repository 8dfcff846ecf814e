package broadcaster

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bnclabs/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbtree/infra/feed"
	"rbtree/infra/outbox"
)

func TestMain(m *testing.M) {
	log.SetLogger(nil, map[string]interface{}{"log.level": "error", "log.file": ""})
	os.Exit(m.Run())
}

type fakePublisher struct {
	mu      sync.Mutex
	fail    error
	batches [][]feed.Event
	closed  bool
}

func (p *fakePublisher) Publish(_ context.Context, events []feed.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.batches = append(p.batches, append([]feed.Event(nil), events...))
	return nil
}

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

func (p *fakePublisher) delivered() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.batches {
		n += len(b)
	}
	return n
}

func fill(t *testing.T, n int) *outbox.Outbox {
	t.Helper()
	ob, err := outbox.Open(outbox.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ob.Close() })
	for i := 1; i <= n; i++ {
		require.NoError(t, ob.Append(feed.NewEvent(feed.EventInsert, int64(i), uint64(i))))
	}
	return ob
}

func TestReplayOnce_AcksDeliveredBatch(t *testing.T) {
	ob := fill(t, 5)
	pub := &fakePublisher{}
	b := New(ob, pub, time.Millisecond, 3)

	n, err := b.replayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	pending, err := ob.Pending()
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	n, err = b.replayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.replayOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	require.Len(t, pub.batches, 2)
	assert.Equal(t, uint64(4), pub.batches[1][0].Seq)
}

func TestReplayOnce_KeepsEventsOnFailure(t *testing.T) {
	ob := fill(t, 4)
	boom := errors.New("broker down")
	pub := &fakePublisher{fail: boom}
	b := New(ob, pub, time.Millisecond, 10)

	_, err := b.replayOnce(context.Background())
	assert.ErrorIs(t, err, boom)

	pending, err := ob.Pending()
	require.NoError(t, err)
	assert.Equal(t, 4, pending)

	pub.fail = nil
	n, err := b.replayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRun_DrainsUntilCancelled(t *testing.T) {
	ob := fill(t, 50)
	pub := &fakePublisher{}
	b := New(ob, pub, 5*time.Millisecond, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pub.delivered() == 50 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	pending, err := ob.Pending()
	require.NoError(t, err)
	assert.Zero(t, pending)

	require.NoError(t, b.Close())
	assert.True(t, pub.closed)
}

func TestDrain_StopsWhenCancelled(t *testing.T) {
	ob := fill(t, 20)
	pub := &fakePublisher{}
	b := New(ob, pub, time.Millisecond, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.drain(ctx)
	assert.Zero(t, pub.delivered())

	b.drain(context.Background())
	assert.Equal(t, 20, pub.delivered())
	require.Len(t, pub.batches, 5)
}

func TestNew_Defaults(t *testing.T) {
	b := New(nil, &fakePublisher{}, 0, 0)
	assert.Equal(t, 250*time.Millisecond, b.tick)
	assert.Equal(t, 256, b.batch)
}
