// Package config holds the server settings and their defaults.
package config

import (
	"flag"
	"strings"
	"time"

	s "github.com/bnclabs/gosettings"
)

// Defaultsettings for the rbtree server.
//
// Configurable parameters:
//
// "server.addr" (string, default: ":50051")
//
// "log.level" (string, default: "info")
//
// "log.file" (string, default: "")
//
//	Empty logs to stdout.
//
// "tree.capacity" (int64, default: 1024)
//
//	Number of node slots allocated up front.
//
// "outbox.dir" (string, default: "")
//
//	Directory for the change-event outbox, empty keeps it in memory.
//	The outbox only exists while "feed.enable" is set.
//
// "outbox.sync" (bool, default: true)
//
//	Sync every outbox write to stable storage.
//
// "feed.enable" (bool, default: false)
//
// "feed.client" (string, default: "sarama")
//
//	Either "sarama" or "kafka-go".
//
// "feed.brokers" (string, default: "localhost:9092")
//
//	Comma separated broker addresses.
//
// "feed.topic" (string, default: "rbtree.changes")
//
// "feed.tick" (int64, default: 250)
//
//	Milliseconds between outbox drains.
//
// "feed.batch" (int64, default: 256)
//
// "stats.tick" (int64, default: 60)
//
//	Seconds between stats log lines, 0 disables them.
func Defaultsettings() s.Settings {
	return s.Settings{
		"server.addr":   ":50051",
		"log.level":     "info",
		"log.file":      "",
		"tree.capacity": int64(1024),
		"outbox.dir":    "",
		"outbox.sync":   true,
		"feed.enable":   false,
		"feed.client":   "sarama",
		"feed.brokers":  "localhost:9092",
		"feed.topic":    "rbtree.changes",
		"feed.tick":     int64(250),
		"feed.batch":    int64(256),
		"stats.tick":    int64(60),
	}
}

// Parse reads command line overrides from args and mixes them into the
// defaults. Only flags present on the command line override a default.
func Parse(name string, args []string) (s.Settings, error) {
	defaults := Defaultsettings()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		addr     = fs.String("addr", defaults.String("server.addr"), "gRPC listen address")
		level    = fs.String("log", defaults.String("log.level"), "log level")
		logfile  = fs.String("logfile", defaults.String("log.file"), "log file, empty for stdout")
		capacity = fs.Int64("capacity", defaults.Int64("tree.capacity"), "initial node slots")
		dir      = fs.String("outbox", defaults.String("outbox.dir"), "outbox directory, empty for in-memory")
		sync     = fs.Bool("sync", defaults.Bool("outbox.sync"), "sync outbox writes")
		enable   = fs.Bool("feed", defaults.Bool("feed.enable"), "publish change events")
		client   = fs.String("client", defaults.String("feed.client"), "feed client: sarama or kafka-go")
		brokers  = fs.String("brokers", defaults.String("feed.brokers"), "comma separated broker list")
		topic    = fs.String("topic", defaults.String("feed.topic"), "feed topic")
		tick     = fs.Int64("tick", defaults.Int64("feed.tick"), "outbox drain period in ms")
		batch    = fs.Int64("batch", defaults.Int64("feed.batch"), "events per publish")
		stats    = fs.Int64("stats", defaults.Int64("stats.tick"), "stats log period in seconds, 0 to disable")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	flags := map[string]string{
		"addr": "server.addr", "log": "log.level", "logfile": "log.file",
		"capacity": "tree.capacity", "outbox": "outbox.dir", "sync": "outbox.sync",
		"feed":   "feed.enable",
		"client": "feed.client", "brokers": "feed.brokers", "topic": "feed.topic",
		"tick": "feed.tick", "batch": "feed.batch", "stats": "stats.tick",
	}
	values := map[string]interface{}{
		"addr": *addr, "log": *level, "logfile": *logfile,
		"capacity": *capacity, "outbox": *dir, "sync": *sync,
		"feed":   *enable,
		"client": *client, "brokers": *brokers, "topic": *topic,
		"tick": *tick, "batch": *batch, "stats": *stats,
	}

	overrides := map[string]interface{}{}
	fs.Visit(func(f *flag.Flag) {
		overrides[flags[f.Name]] = values[f.Name]
	})
	return make(s.Settings).Mixin(defaults, overrides), nil
}

// Brokers splits "feed.brokers" into addresses.
func Brokers(setts s.Settings) []string {
	var brokers []string
	for _, b := range strings.Split(setts.String("feed.brokers"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// FeedTick returns "feed.tick" as a duration.
func FeedTick(setts s.Settings) time.Duration {
	return time.Duration(setts.Int64("feed.tick")) * time.Millisecond
}

// StatsTick returns "stats.tick" as a duration.
func StatsTick(setts s.Settings) time.Duration {
	return time.Duration(setts.Int64("stats.tick")) * time.Second
}

// Logsettings picks the settings golog understands.
func Logsettings(setts s.Settings) map[string]interface{} {
	return map[string]interface{}{
		"log.level": setts.String("log.level"),
		"log.file":  setts.String("log.file"),
	}
}
