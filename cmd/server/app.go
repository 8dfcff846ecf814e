package main

import (
	"context"
	"time"

	"github.com/bnclabs/golog"
	s "github.com/bnclabs/gosettings"
	"google.golang.org/grpc"

	"rbtree/api/grpcserver"
	"rbtree/api/pb"
	"rbtree/config"
	"rbtree/domain/rbtree"
	"rbtree/infra/feed"
	"rbtree/infra/outbox"
	"rbtree/infra/sequence"
	"rbtree/jobs/broadcaster"
	"rbtree/service"
)

// app is everything main wires together. outbox and bc stay nil while
// the change feed is off, so nothing records events nobody drains.
type app struct {
	svc    *service.SetService
	outbox *outbox.Outbox
	bc     *broadcaster.Broadcaster
	grpc   *grpc.Server
}

func build(setts s.Settings) (*app, error) {
	a := &app{}
	seqGen := sequence.New(0)

	// ---------------- Change feed ----------------

	if setts.Bool("feed.enable") {
		ob, err := outbox.Open(outbox.Config{
			Dir:  setts.String("outbox.dir"),
			Sync: setts.Bool("outbox.sync"),
		})
		if err != nil {
			return nil, err
		}
		a.outbox = ob

		// resume numbering after everything recorded so far
		last, err := ob.LastSeq()
		if err != nil {
			a.close()
			return nil, err
		}
		seqGen = sequence.New(last)

		pub, err := feed.New(feed.Config{
			Client:  setts.String("feed.client"),
			Brokers: config.Brokers(setts),
			Topic:   setts.String("feed.topic"),
		})
		if err != nil {
			a.close()
			return nil, err
		}
		a.bc = broadcaster.New(ob, pub, config.FeedTick(setts), int(setts.Int64("feed.batch")))
	}

	// ---------------- Service ----------------

	tree := rbtree.NewWithCapacity[int64](int(setts.Int64("tree.capacity")))
	a.svc = service.NewSetService(tree, seqGen, a.outbox)

	// ---------------- gRPC ----------------

	a.grpc = grpc.NewServer()
	pb.RegisterOrderedSetServer(a.grpc, grpcserver.NewServer(a.svc))
	return a, nil
}

// start runs the background jobs until ctx is done.
func (a *app) start(ctx context.Context, statsTick time.Duration) {
	if a.bc != nil {
		go a.bc.Run(ctx)
	}
	if statsTick > 0 {
		go func() {
			ticker := time.NewTicker(statsTick)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					a.svc.LogStats()
				}
			}
		}()
	}
}

func (a *app) close() {
	if a.bc != nil {
		if err := a.bc.Close(); err != nil {
			log.Errorf("publisher close: %v\n", err)
		}
	}
	if a.outbox != nil {
		if err := a.outbox.Close(); err != nil {
			log.Errorf("outbox close: %v\n", err)
		}
	}
}
