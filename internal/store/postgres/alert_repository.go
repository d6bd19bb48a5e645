package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"watchdog-go/internal/domain"
)

// AlertRepository implements store.AlertRepository using PostgreSQL.
type AlertRepository struct {
	db *DB
}

// NewAlertRepository creates a new PostgreSQL-backed alert repository.
func NewAlertRepository(db *DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create stores a new alert.
func (r *AlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	query := `
		INSERT INTO alerts (
			id, client_id, client_name, transaction_id, rule_code,
			rule_description, severity, status, resolution_notes,
			resolved_by, resolved_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.pool.Exec(ctx, query,
		alert.ID,
		alert.ClientID,
		alert.ClientName,
		alert.TransactionID,
		alert.RuleCode,
		alert.RuleDescription,
		alert.Severity,
		alert.Status,
		nullableString(alert.ResolutionNotes),
		nullableString(alert.ResolvedBy),
		alert.ResolvedAt,
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	return nil
}

// Update modifies an existing alert.
func (r *AlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	query := `
		UPDATE alerts SET
			status = $2,
			resolution_notes = $3,
			resolved_by = $4,
			resolved_at = $5
		WHERE id = $1
	`

	result, err := r.db.pool.Exec(ctx, query,
		alert.ID,
		alert.Status,
		nullableString(alert.ResolutionNotes),
		nullableString(alert.ResolvedBy),
		alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}

	return nil
}

// GetByID retrieves an alert by ID.
func (r *AlertRepository) GetByID(ctx context.Context, id string) (*domain.Alert, error) {
	query := `
		SELECT id, client_id, client_name, transaction_id, rule_code,
			   rule_description, severity, status, resolution_notes,
			   resolved_by, resolved_at, created_at
		FROM alerts
		WHERE id = $1
	`

	alert, err := scanAlert(r.db.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return alert, nil
}

// List retrieves alerts matching the filter, in creation order.
func (r *AlertRepository) List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	query := `
		SELECT id, client_id, client_name, transaction_id, rule_code,
			   rule_description, severity, status, resolution_notes,
			   resolved_by, resolved_at, created_at
		FROM alerts
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (client_name ILIKE $%d OR rule_description ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filter.Status)
		argNum++
	}
	if filter.Severity != "" {
		query += fmt.Sprintf(" AND severity = $%d", argNum)
		args = append(args, filter.Severity)
		argNum++
	}
	if filter.ClientID != "" {
		query += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, filter.ClientID)
	}

	query += " ORDER BY created_at, id"

	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}

	return alerts, nil
}

// scanAlert scans a single row into an Alert.
func scanAlert(row pgx.Row) (*domain.Alert, error) {
	var alert domain.Alert
	var notes, resolvedBy *string

	err := row.Scan(
		&alert.ID,
		&alert.ClientID,
		&alert.ClientName,
		&alert.TransactionID,
		&alert.RuleCode,
		&alert.RuleDescription,
		&alert.Severity,
		&alert.Status,
		&notes,
		&resolvedBy,
		&alert.ResolvedAt,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes != nil {
		alert.ResolutionNotes = *notes
	}
	if resolvedBy != nil {
		alert.ResolvedBy = *resolvedBy
	}

	return &alert, nil
}
