// Package memory provides in-memory implementations of store interfaces.
// These are useful for testing and development without external dependencies,
// and stand in for the real backend when the service runs in memory mode.
package memory

import (
	"context"
	"sync"

	"watchdog-go/internal/domain"
)

// ClientRepository is an in-memory implementation of store.ClientRepository.
// Clients are held in a map by ID with a parallel slice preserving insertion
// order, so unfiltered listings return the collection as built.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []string
}

// NewClientRepository creates a new in-memory client repository.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

// Create stores a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to prevent external modification
	clientCopy := *client
	if _, exists := r.clients[client.ID]; !exists {
		r.order = append(r.order, client.ID)
	}
	r.clients[client.ID] = &clientCopy
	return nil
}

// Update modifies an existing client.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.ID]; !exists {
		return domain.ErrClientNotFound
	}

	clientCopy := *client
	r.clients[client.ID] = &clientCopy
	return nil
}

// GetByID retrieves a client by its ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[id]
	if !exists {
		return nil, domain.ErrClientNotFound
	}

	result := *client
	return &result, nil
}

// List retrieves clients matching the filter criteria, in insertion order.
func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.Client, 0, len(r.order))
	for _, id := range r.order {
		client := r.clients[id]
		if !filter.Matches(client) {
			continue
		}
		clientCopy := *client
		results = append(results, &clientCopy)
	}
	return results, nil
}

// Clear removes all data from the repository. Useful for test cleanup.
func (r *ClientRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = make(map[string]*domain.Client)
	r.order = nil
}
