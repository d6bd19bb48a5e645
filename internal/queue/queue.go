// Package queue abstracts the transaction event stream between ingestion and
// screening. Implementations exist for Kafka and for an in-process channel
// used in memory mode and tests.
package queue

import (
	"context"
)

// Message is a single event on the stream.
type Message struct {
	// Key is the partition key. Events for the same client share a key so
	// screening sees them in order.
	Key []byte

	// Value is the serialized payload.
	Value []byte

	// Headers carries optional metadata.
	Headers map[string]string
}

// Producer publishes events to the stream.
// Implementations must be safe for concurrent use.
type Producer interface {
	// Publish sends a message. Messages with the same key are delivered
	// to consumers in publish order.
	Publish(ctx context.Context, msg *Message) error

	// Close releases any resources held by the producer.
	Close() error
}

// MessageHandler processes one consumed message. Returning an error marks
// the message as failed; whether it is retried depends on the implementation.
type MessageHandler func(ctx context.Context, msg *Message) error

// Consumer reads events from the stream.
type Consumer interface {
	// Start consumes messages and invokes the handler for each one. It
	// blocks until the context is canceled or an unrecoverable error
	// occurs.
	Start(ctx context.Context, handler MessageHandler) error

	// Close stops consuming and releases any resources.
	Close() error
}
