// Package memory provides an in-process implementation of the queue
// interfaces, backed by a channel. It carries the transaction event stream
// when the service runs in memory mode, and it is what tests use.
package memory

import (
	"context"
	"sync"

	"watchdog-go/internal/queue"
)

// Queue implements both Producer and Consumer over a buffered channel, so
// ingestion and screening can run in the same process without a broker.
// Safe for concurrent use.
type Queue struct {
	messages chan *queue.Message
	closed   bool
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

// NewQueue creates an in-process queue. The buffer size bounds how many
// events can be pending before Publish blocks.
func NewQueue(bufferSize int) *Queue {
	return &Queue{
		messages: make(chan *queue.Message, bufferSize),
	}
}

// Publish places a message on the queue. It blocks while the buffer is full
// until space frees up or the context is canceled.
func (q *Queue) Publish(ctx context.Context, msg *queue.Message) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	select {
	case q.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start consumes messages and invokes the handler for each one. It blocks
// until the context is canceled or the queue is closed. Handler failures are
// dropped; there is no retry in process.
func (q *Queue) Start(ctx context.Context, handler queue.MessageHandler) error {
	q.wg.Add(1)
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-q.messages:
			if !ok {
				return nil
			}
			if err := handler(ctx, msg); err != nil {
				continue
			}
		}
	}
}

// Close shuts the queue down and waits for consumers to drain.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.messages)
	q.wg.Wait()
	return nil
}

// Len reports how many messages are pending. Used by tests.
func (q *Queue) Len() int {
	return len(q.messages)
}
