// Package store defines interfaces for data persistence and state management.
// These abstractions allow swapping implementations (PostgreSQL, Redis,
// in-memory) without changing business logic.
package store

import (
	"context"

	"watchdog-go/internal/domain"
)

// ClientRepository defines the interface for client persistence.
// List must return clients in insertion order: filtering with a zero-value
// filter yields the collection exactly as it was built.
type ClientRepository interface {
	// Create stores a new client.
	Create(ctx context.Context, client *domain.Client) error

	// Update modifies an existing client.
	Update(ctx context.Context, client *domain.Client) error

	// GetByID retrieves a client by its ID.
	GetByID(ctx context.Context, id string) (*domain.Client, error)

	// List retrieves clients matching the filter criteria, in insertion
	// order.
	List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error)
}

// TransactionRepository defines the interface for transaction persistence.
// Transactions are immutable: there is no update or delete.
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, txn *domain.Transaction) error

	// GetByID retrieves a transaction by its ID.
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)

	// List retrieves transactions matching the filter criteria, in
	// insertion order.
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
}

// AlertRepository defines the interface for alert persistence.
type AlertRepository interface {
	// Create stores a new alert.
	Create(ctx context.Context, alert *domain.Alert) error

	// Update modifies an existing alert.
	Update(ctx context.Context, alert *domain.Alert) error

	// GetByID retrieves an alert by its ID.
	GetByID(ctx context.Context, id string) (*domain.Alert, error)

	// List retrieves alerts matching the filter criteria, in insertion
	// order.
	List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error)
}

// RuleRepository defines the interface for compliance rule persistence.
type RuleRepository interface {
	// Create stores a new compliance rule.
	Create(ctx context.Context, rule *domain.ComplianceRule) error

	// ListActive retrieves all active compliance rules.
	ListActive(ctx context.Context) ([]*domain.ComplianceRule, error)
}

// RiskCountryRepository defines the interface for the country risk list.
type RiskCountryRepository interface {
	// Create stores a new risk country entry.
	Create(ctx context.Context, rc *domain.RiskCountry) error

	// GetByCode retrieves an active entry by its 2-letter country code.
	// Returns domain.ErrRiskCountryNotFound when the country is not
	// listed.
	GetByCode(ctx context.Context, code string) (*domain.RiskCountry, error)
}
