package feed

import (
	"context"
	"errors"
	"fmt"
)

// Publisher ships a batch of events, in order, to the feed topic.
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
	Close() error
}

const (
	ClientSarama  = "sarama"
	ClientKafkaGo = "kafka-go"
)

var (
	ErrUnknownClient = errors.New("feed: unknown kafka client")
	ErrNoBrokers     = errors.New("feed: no brokers configured")
)

type Config struct {
	Client  string
	Brokers []string
	Topic   string
}

// New builds the publisher selected by cfg.Client.
func New(cfg Config) (Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	switch cfg.Client {
	case ClientSarama:
		return NewSaramaPublisher(cfg.Brokers, cfg.Topic)
	case ClientKafkaGo:
		return NewKafkaPublisher(cfg.Brokers, cfg.Topic), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClient, cfg.Client)
	}
}
