package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"watchdog-go/internal/domain"
)

// TransactionRepository implements store.TransactionRepository using
// PostgreSQL. Transactions are append-only; there is no update path.
type TransactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new PostgreSQL-backed transaction
// repository.
func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create stores a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, client_id, client_name, type, amount, currency,
			counterparty, counterparty_country, occurred_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.pool.Exec(ctx, query,
		txn.ID,
		txn.ClientID,
		txn.ClientName,
		txn.Type,
		txn.Amount.Value,
		txn.Amount.Currency,
		txn.Counterparty,
		nullableString(txn.CounterpartyCountry),
		txn.OccurredAt,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, client_id, client_name, type, amount, currency,
			   counterparty, counterparty_country, occurred_at, created_at
		FROM transactions
		WHERE id = $1
	`

	txn, err := scanTransaction(r.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return txn, nil
}

// List retrieves transactions matching the filter, in creation order.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := `
		SELECT id, client_id, client_name, type, amount, currency,
			   counterparty, counterparty_country, occurred_at, created_at
		FROM transactions
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (client_name ILIKE $%d OR counterparty ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argNum)
		args = append(args, filter.Type)
		argNum++
	}
	if filter.ClientID != "" {
		query += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, filter.ClientID)
	}

	query += " ORDER BY created_at, id"

	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// scanTransaction scans a single row into a Transaction.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var counterpartyCountry *string

	err := row.Scan(
		&txn.ID,
		&txn.ClientID,
		&txn.ClientName,
		&txn.Type,
		&txn.Amount.Value,
		&txn.Amount.Currency,
		&txn.Counterparty,
		&counterpartyCountry,
		&txn.OccurredAt,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if counterpartyCountry != nil {
		txn.CounterpartyCountry = *counterpartyCountry
	}

	return &txn, nil
}

// nullableString returns nil for an empty string so it is stored as NULL.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
