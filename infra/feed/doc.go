// Package feed defines the change events emitted for every successful
// mutation of the ordered set and the publishers that ship them to
// Kafka. Two clients are supported: IBM/sarama and segmentio/kafka-go,
// selected by configuration.
package feed
