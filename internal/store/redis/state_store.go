// Package redis provides a Redis-backed implementation of the screening
// state store, used when the service runs in storage mode. The per-client
// daily counters survive restarts and are shared across instances.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"watchdog-go/internal/config"
)

// Key prefixes for the screening counters.
const (
	prefixDailyVolume   = "volume:"
	prefixNearThreshold = "band:"
)

// StateStore implements store.StateStore using Redis.
type StateStore struct {
	client *redis.Client
}

// NewStateStore creates a new Redis-backed state store.
func NewStateStore(cfg *config.RedisConfig) (*StateStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &StateStore{client: client}, nil
}

// dayKey builds the counter key for one client and calendar day.
func dayKey(prefix, clientID, day string) string {
	return prefix + clientID + ":" + day
}

// AddDailyVolume adds the amount to the client's volume counter for the day
// and returns the new total. The TTL is refreshed on every write so the key
// expires after the day goes quiet.
func (s *StateStore) AddDailyVolume(ctx context.Context, clientID, day string, amount float64, ttl time.Duration) (float64, error) {
	key := dayKey(prefixDailyVolume, clientID, day)

	total, err := s.client.IncrByFloat(ctx, key, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment daily volume: %w", err)
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return 0, fmt.Errorf("failed to set volume ttl: %w", err)
	}

	return total, nil
}

// IncrNearThreshold bumps the client's count of just-under-the-threshold
// transactions for the day and returns the new count.
func (s *StateStore) IncrNearThreshold(ctx context.Context, clientID, day string, ttl time.Duration) (int, error) {
	key := dayKey(prefixNearThreshold, clientID, day)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment near-threshold count: %w", err)
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return 0, fmt.Errorf("failed to set count ttl: %w", err)
	}

	return int(count), nil
}

// Close closes the Redis client connection.
func (s *StateStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
