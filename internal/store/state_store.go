package store

import (
	"context"
	"time"
)

// StateStore defines the interface for the screening service's rolling
// per-client calendar-day counters. This is typically backed by Redis for
// production use; keys carry a TTL so stale days expire on their own.
// All methods must be safe for concurrent use.
type StateStore interface {
	// AddDailyVolume adds amount to the client's running volume for the
	// given calendar day and returns the new total.
	AddDailyVolume(ctx context.Context, clientID, day string, amount float64, ttl time.Duration) (float64, error)

	// IncrNearThreshold increments the client's count of same-day
	// transactions inside the structuring band and returns the new count.
	IncrNearThreshold(ctx context.Context, clientID, day string, ttl time.Duration) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
