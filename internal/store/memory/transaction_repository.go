package memory

import (
	"context"
	"sync"

	"watchdog-go/internal/domain"
)

// TransactionRepository is an in-memory implementation of
// store.TransactionRepository. Transactions are immutable once created, so
// there is no update path.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	order        []string
}

// NewTransactionRepository creates a new in-memory transaction repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

// Create stores a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txnCopy := *txn
	if _, exists := r.transactions[txn.ID]; !exists {
		r.order = append(r.order, txn.ID)
	}
	r.transactions[txn.ID] = &txnCopy
	return nil
}

// GetByID retrieves a transaction by its ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txn, exists := r.transactions[id]
	if !exists {
		return nil, domain.ErrTransactionNotFound
	}

	result := *txn
	return &result, nil
}

// List retrieves transactions matching the filter criteria, in insertion
// order.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.Transaction, 0, len(r.order))
	for _, id := range r.order {
		txn := r.transactions[id]
		if !filter.Matches(txn) {
			continue
		}
		txnCopy := *txn
		results = append(results, &txnCopy)
	}
	return results, nil
}

// Clear removes all data from the repository. Useful for test cleanup.
func (r *TransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = make(map[string]*domain.Transaction)
	r.order = nil
}
