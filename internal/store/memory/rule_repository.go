package memory

import (
	"context"
	"strings"
	"sync"

	"watchdog-go/internal/domain"
)

// RuleRepository is an in-memory implementation of store.RuleRepository.
type RuleRepository struct {
	mu    sync.RWMutex
	rules map[string]*domain.ComplianceRule
	order []string
}

// NewRuleRepository creates a new in-memory rule repository.
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{
		rules: make(map[string]*domain.ComplianceRule),
	}
}

// Create stores a new compliance rule.
func (r *RuleRepository) Create(ctx context.Context, rule *domain.ComplianceRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ruleCopy := *rule
	if _, exists := r.rules[rule.ID]; !exists {
		r.order = append(r.order, rule.ID)
	}
	r.rules[rule.ID] = &ruleCopy
	return nil
}

// ListActive retrieves all active compliance rules, in insertion order.
func (r *RuleRepository) ListActive(ctx context.Context) ([]*domain.ComplianceRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.ComplianceRule, 0, len(r.order))
	for _, id := range r.order {
		rule := r.rules[id]
		if !rule.IsActive {
			continue
		}
		ruleCopy := *rule
		results = append(results, &ruleCopy)
	}
	return results, nil
}

// RiskCountryRepository is an in-memory implementation of
// store.RiskCountryRepository, keyed by uppercase country code.
type RiskCountryRepository struct {
	mu        sync.RWMutex
	countries map[string]*domain.RiskCountry
}

// NewRiskCountryRepository creates a new in-memory risk country repository.
func NewRiskCountryRepository() *RiskCountryRepository {
	return &RiskCountryRepository{
		countries: make(map[string]*domain.RiskCountry),
	}
}

// Create stores a new risk country entry.
func (r *RiskCountryRepository) Create(ctx context.Context, rc *domain.RiskCountry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rcCopy := *rc
	r.countries[strings.ToUpper(rc.CountryCode)] = &rcCopy
	return nil
}

// GetByCode retrieves an active entry by its 2-letter country code.
func (r *RiskCountryRepository) GetByCode(ctx context.Context, code string) (*domain.RiskCountry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rc, exists := r.countries[strings.ToUpper(code)]
	if !exists || !rc.IsActive {
		return nil, domain.ErrRiskCountryNotFound
	}

	result := *rc
	return &result, nil
}
