package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnclabs/golog"

	"rbtree/config"
)

func main() {
	// ---------------- Settings ----------------

	setts, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log.SetLogger(nil, config.Logsettings(setts))

	// ---------------- Wiring ----------------

	a, err := build(setts)
	if err != nil {
		log.Fatalf("init failed: %v\n", err)
	}
	defer a.close()

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.start(ctx, config.StatsTick(setts))

	// ---------------- gRPC ----------------

	addr := setts.String("server.addr")
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen failed: %v\n", err)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		log.Infof("received %v, shutting down\n", <-sig)
		cancel()
		a.grpc.GracefulStop()
	}()

	log.Infof("rbtree server running on %s (feed %v)\n", addr, a.bc != nil)
	if err := a.grpc.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v\n", err)
	}
	a.svc.LogStats()
}
