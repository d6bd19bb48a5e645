package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// StateStore is an in-memory implementation of the store.StateStore
// interface. It uses maps with mutex protection for thread-safe access.
// TTL expiration is checked on access (lazy expiration).
type StateStore struct {
	mu sync.Mutex

	// volumes stores running daily volume keyed by "clientID:day"
	volumes map[string]*counterEntry

	// nearThreshold stores structuring-band counts keyed by "clientID:day"
	nearThreshold map[string]*counterEntry
}

// counterEntry wraps a numeric counter with expiration tracking.
type counterEntry struct {
	value     float64
	expiresAt time.Time
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		volumes:       make(map[string]*counterEntry),
		nearThreshold: make(map[string]*counterEntry),
	}
}

// dayKey generates the key for a client's calendar-day counters.
func dayKey(clientID, day string) string {
	return fmt.Sprintf("%s:%s", clientID, day)
}

// bump adds delta to the keyed counter, resetting it first if expired.
func bump(entries map[string]*counterEntry, key string, delta float64, ttl time.Duration) float64 {
	entry, exists := entries[key]
	if !exists || time.Now().After(entry.expiresAt) {
		entry = &counterEntry{expiresAt: time.Now().Add(ttl)}
		entries[key] = entry
	}
	entry.value += delta
	return entry.value
}

// AddDailyVolume adds amount to the client's running volume for the day and
// returns the new total.
func (s *StateStore) AddDailyVolume(ctx context.Context, clientID, day string, amount float64, ttl time.Duration) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bump(s.volumes, dayKey(clientID, day), amount, ttl), nil
}

// IncrNearThreshold increments the client's structuring-band count for the
// day and returns the new count.
func (s *StateStore) IncrNearThreshold(ctx context.Context, clientID, day string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int(bump(s.nearThreshold, dayKey(clientID, day), 1, ttl)), nil
}

// Close releases any resources (no-op for in-memory store).
func (s *StateStore) Close() error {
	return nil
}

// Clear removes all data from the store. Useful for test cleanup.
func (s *StateStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volumes = make(map[string]*counterEntry)
	s.nearThreshold = make(map[string]*counterEntry)
}
