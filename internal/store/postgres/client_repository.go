package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"watchdog-go/internal/domain"
)

// ClientRepository implements store.ClientRepository using PostgreSQL.
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new PostgreSQL-backed client repository.
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create stores a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, country, risk_level, kyc_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Country,
		client.RiskLevel,
		client.KYCStatus,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// Update modifies an existing client.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients SET
			name = $2,
			country = $3,
			risk_level = $4,
			kyc_status = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Country,
		client.RiskLevel,
		client.KYCStatus,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `
		SELECT id, name, country, risk_level, kyc_status, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	client, err := scanClient(r.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

// List retrieves clients matching the filter, in creation order.
func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	query := `
		SELECT id, name, country, risk_level, kyc_status, created_at, updated_at
		FROM clients
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR country ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}
	if filter.RiskLevel != "" {
		query += fmt.Sprintf(" AND risk_level = $%d", argNum)
		args = append(args, filter.RiskLevel)
		argNum++
	}
	if filter.KYCStatus != "" {
		query += fmt.Sprintf(" AND kyc_status = $%d", argNum)
		args = append(args, filter.KYCStatus)
	}

	query += " ORDER BY created_at, id"

	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// scanClient scans a single row into a Client.
func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Country,
		&client.RiskLevel,
		&client.KYCStatus,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}
