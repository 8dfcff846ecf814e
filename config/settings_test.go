package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	setts, err := Parse("test", nil)
	require.NoError(t, err)

	assert.Equal(t, ":50051", setts.String("server.addr"))
	assert.Equal(t, int64(1024), setts.Int64("tree.capacity"))
	assert.False(t, setts.Bool("feed.enable"))
	assert.True(t, setts.Bool("outbox.sync"))
	assert.Equal(t, []string{"localhost:9092"}, Brokers(setts))
	assert.Equal(t, 250*time.Millisecond, FeedTick(setts))
	assert.Equal(t, time.Minute, StatsTick(setts))
}

func TestParse_Overrides(t *testing.T) {
	setts, err := Parse("test", []string{
		"-addr", "127.0.0.1:9000",
		"-feed",
		"-client", "kafka-go",
		"-brokers", "a:9092, b:9092,,",
		"-capacity", "64",
		"-stats", "0",
		"-sync=false",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", setts.String("server.addr"))
	assert.True(t, setts.Bool("feed.enable"))
	assert.Equal(t, "kafka-go", setts.String("feed.client"))
	assert.Equal(t, []string{"a:9092", "b:9092"}, Brokers(setts))
	assert.Equal(t, int64(64), setts.Int64("tree.capacity"))
	assert.Zero(t, StatsTick(setts))
	assert.False(t, setts.Bool("outbox.sync"))

	// untouched keys keep their defaults
	assert.Equal(t, "rbtree.changes", setts.String("feed.topic"))
	assert.Equal(t, int64(256), setts.Int64("feed.batch"))
}

func TestParse_BadFlag(t *testing.T) {
	_, err := Parse("test", []string{"-capacity", "lots"})
	assert.Error(t, err)
}

func TestLogsettings(t *testing.T) {
	setts := Defaultsettings()
	assert.Equal(t, map[string]interface{}{"log.level": "info", "log.file": ""}, Logsettings(setts))
}
