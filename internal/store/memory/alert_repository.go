package memory

import (
	"context"
	"sync"

	"watchdog-go/internal/domain"
)

// AlertRepository is an in-memory implementation of store.AlertRepository.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]*domain.Alert
	order  []string
}

// NewAlertRepository creates a new in-memory alert repository.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{
		alerts: make(map[string]*domain.Alert),
	}
}

// Create stores a new alert.
func (r *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alertCopy := *alert
	if _, exists := r.alerts[alert.ID]; !exists {
		r.order = append(r.order, alert.ID)
	}
	r.alerts[alert.ID] = &alertCopy
	return nil
}

// Update modifies an existing alert.
func (r *AlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[alert.ID]; !exists {
		return domain.ErrAlertNotFound
	}

	alertCopy := *alert
	r.alerts[alert.ID] = &alertCopy
	return nil
}

// GetByID retrieves an alert by its ID.
func (r *AlertRepository) GetByID(ctx context.Context, id string) (*domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alert, exists := r.alerts[id]
	if !exists {
		return nil, domain.ErrAlertNotFound
	}

	result := *alert
	return &result, nil
}

// List retrieves alerts matching the filter criteria, in insertion order.
func (r *AlertRepository) List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.Alert, 0, len(r.order))
	for _, id := range r.order {
		alert := r.alerts[id]
		if !filter.Matches(alert) {
			continue
		}
		alertCopy := *alert
		results = append(results, &alertCopy)
	}
	return results, nil
}

// Clear removes all data from the repository. Useful for test cleanup.
func (r *AlertRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = make(map[string]*domain.Alert)
	r.order = nil
}
