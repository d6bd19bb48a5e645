package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"watchdog-go/internal/domain"
)

// RuleRepository implements store.RuleRepository using PostgreSQL. Rule
// parameters are stored as JSONB.
type RuleRepository struct {
	db *DB
}

// NewRuleRepository creates a new PostgreSQL-backed rule repository.
func NewRuleRepository(db *DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create stores a new compliance rule.
func (r *RuleRepository) Create(ctx context.Context, rule *domain.ComplianceRule) error {
	params, err := json.Marshal(rule.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal rule parameters: %w", err)
	}

	query := `
		INSERT INTO compliance_rules (id, code, name, description, parameters, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.pool.Exec(ctx, query,
		rule.ID,
		rule.Code,
		rule.Name,
		rule.Description,
		params,
		rule.IsActive,
		rule.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}

	return nil
}

// ListActive retrieves the active compliance rules, in creation order.
func (r *RuleRepository) ListActive(ctx context.Context) ([]*domain.ComplianceRule, error) {
	query := `
		SELECT id, code, name, description, parameters, is_active, created_at
		FROM compliance_rules
		WHERE is_active
		ORDER BY created_at, id
	`

	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.ComplianceRule
	for rows.Next() {
		var rule domain.ComplianceRule
		var params []byte
		err := rows.Scan(
			&rule.ID,
			&rule.Code,
			&rule.Name,
			&rule.Description,
			&params,
			&rule.IsActive,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		if err := json.Unmarshal(params, &rule.Parameters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule parameters: %w", err)
		}
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return rules, nil
}

// RiskCountryRepository implements store.RiskCountryRepository using
// PostgreSQL.
type RiskCountryRepository struct {
	db *DB
}

// NewRiskCountryRepository creates a new PostgreSQL-backed risk country
// repository.
func NewRiskCountryRepository(db *DB) *RiskCountryRepository {
	return &RiskCountryRepository{db: db}
}

// Create stores a new risk country entry.
func (r *RiskCountryRepository) Create(ctx context.Context, rc *domain.RiskCountry) error {
	query := `
		INSERT INTO risk_countries (id, country_code, country_name, risk_level, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.pool.Exec(ctx, query,
		rc.ID,
		rc.CountryCode,
		rc.CountryName,
		rc.RiskLevel,
		rc.IsActive,
		rc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create risk country: %w", err)
	}

	return nil
}

// GetByCode retrieves an active risk country entry by its 2-letter code.
// Inactive entries are treated as not found.
func (r *RiskCountryRepository) GetByCode(ctx context.Context, code string) (*domain.RiskCountry, error) {
	query := `
		SELECT id, country_code, country_name, risk_level, is_active, created_at
		FROM risk_countries
		WHERE country_code = UPPER($1) AND is_active
	`

	var rc domain.RiskCountry
	err := r.db.pool.QueryRow(ctx, query, code).Scan(
		&rc.ID,
		&rc.CountryCode,
		&rc.CountryName,
		&rc.RiskLevel,
		&rc.IsActive,
		&rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRiskCountryNotFound
		}
		return nil, fmt.Errorf("failed to get risk country: %w", err)
	}

	return &rc, nil
}
