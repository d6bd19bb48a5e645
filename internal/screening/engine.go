// Package screening evaluates incoming transactions against the compliance
// rules and raises alerts for violations. The processor consumes transaction
// events from the queue; the engine holds the rule logic and the running
// per-client daily counters.
package screening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/store"
)

// counterTTL is how long per-client daily counters live in the state store.
// Two days covers the current day plus clock skew around midnight.
const counterTTL = 48 * time.Hour

// Finding is one rule violation detected for a transaction.
type Finding struct {
	RuleCode    domain.RuleCode
	Severity    domain.AlertSeverity
	Description string
}

// Engine runs the active compliance rules against a transaction.
type Engine struct {
	rules     store.RuleRepository
	countries store.RiskCountryRepository
	state     store.StateStore
	logger    *slog.Logger
}

// NewEngine creates a rule engine.
func NewEngine(
	rules store.RuleRepository,
	countries store.RiskCountryRepository,
	state store.StateStore,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		rules:     rules,
		countries: countries,
		state:     state,
		logger:    logger,
	}
}

// Evaluate runs every active rule against the transaction and returns the
// violations found. Counter updates happen as a side effect, so each
// transaction must be evaluated exactly once.
func (e *Engine) Evaluate(ctx context.Context, txn *domain.Transaction) ([]Finding, error) {
	rules, err := e.rules.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}

	day := txn.OccurredAt.UTC().Format("2006-01-02")

	var findings []Finding
	for _, rule := range rules {
		var finding *Finding
		var err error

		switch rule.Code {
		case domain.RuleDailyLimit:
			finding, err = e.evalDailyLimit(ctx, rule, txn, day)
		case domain.RuleHighFrequency:
			finding, err = e.evalStructuring(ctx, rule, txn, day)
		case domain.RuleSuspiciousCountry:
			finding, err = e.evalSuspiciousCountry(ctx, rule, txn)
		case domain.RuleLargeAmount:
			finding = e.evalLargeAmount(rule, txn)
		default:
			e.logger.Warn("unknown rule code", "code", rule.Code)
			continue
		}

		if err != nil {
			return nil, err
		}
		if finding != nil {
			findings = append(findings, *finding)
		}
	}

	return findings, nil
}

// evalDailyLimit accumulates the client's same-day volume and flags the
// transaction that pushes the total over the limit. Later transactions the
// same day keep flagging; each carries the running total at that point.
func (e *Engine) evalDailyLimit(ctx context.Context, rule *domain.ComplianceRule, txn *domain.Transaction, day string) (*Finding, error) {
	limit := rule.Param(domain.ParamDailyLimit, 100000)

	total, err := e.state.AddDailyVolume(ctx, txn.ClientID, day, txn.Amount.Value, counterTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to update daily volume: %w", err)
	}
	if total <= limit {
		return nil, nil
	}

	return &Finding{
		RuleCode:    domain.RuleDailyLimit,
		Severity:    domain.SeverityMedium,
		Description: fmt.Sprintf("Daily limit exceeded (%.2f > %.2f)", total, limit),
	}, nil
}

// evalStructuring counts same-day transactions inside the just-under-the-
// threshold band. Once the count reaches the minimum, the transaction that
// completed the pattern is flagged, as is each further one.
func (e *Engine) evalStructuring(ctx context.Context, rule *domain.ComplianceRule, txn *domain.Transaction, day string) (*Finding, error) {
	low := rule.Param(domain.ParamBandLow, 9000)
	high := rule.Param(domain.ParamBandHigh, 10000)
	minCount := int(rule.Param(domain.ParamMinCount, 3))

	if txn.Amount.Value < low || txn.Amount.Value >= high {
		return nil, nil
	}

	count, err := e.state.IncrNearThreshold(ctx, txn.ClientID, day, counterTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to update near-threshold count: %w", err)
	}
	if count < minCount {
		return nil, nil
	}

	return &Finding{
		RuleCode:    domain.RuleHighFrequency,
		Severity:    domain.SeverityHigh,
		Description: fmt.Sprintf("Possible structuring detected: %d transactions today between %.2f and %.2f", count, low, high),
	}, nil
}

// evalSuspiciousCountry checks the counterparty country against the risk
// list. Blocked countries raise critical alerts, high-risk countries high,
// and medium-risk countries medium.
func (e *Engine) evalSuspiciousCountry(ctx context.Context, rule *domain.ComplianceRule, txn *domain.Transaction) (*Finding, error) {
	if txn.CounterpartyCountry == "" {
		return nil, nil
	}

	rc, err := e.countries.GetByCode(ctx, txn.CounterpartyCountry)
	if err != nil {
		if errors.Is(err, domain.ErrRiskCountryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up risk country: %w", err)
	}

	switch rc.RiskLevel {
	case domain.CountryRiskBlocked:
		return &Finding{
			RuleCode:    domain.RuleSuspiciousCountry,
			Severity:    domain.SeverityCritical,
			Description: fmt.Sprintf("Transaction with blocked country (%s)", rc.CountryName),
		}, nil
	case domain.CountryRiskHigh:
		return &Finding{
			RuleCode:    domain.RuleSuspiciousCountry,
			Severity:    domain.SeverityHigh,
			Description: fmt.Sprintf("Transfer to high-risk country (%s)", rc.CountryName),
		}, nil
	default:
		return &Finding{
			RuleCode:    domain.RuleSuspiciousCountry,
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("Transaction with monitored country (%s)", rc.CountryName),
		}, nil
	}
}

// evalLargeAmount flags single transactions at or above the large-amount
// thresholds. Very large amounts escalate the severity one step.
func (e *Engine) evalLargeAmount(rule *domain.ComplianceRule, txn *domain.Transaction) *Finding {
	large := rule.Param(domain.ParamLargeAmount, 50000)
	veryLarge := rule.Param(domain.ParamVeryLargeAmount, 100000)

	if txn.Amount.Value < large {
		return nil
	}

	severity := domain.SeverityLow
	if txn.Amount.Value >= veryLarge {
		severity = domain.SeverityMedium
	}

	return &Finding{
		RuleCode:    domain.RuleLargeAmount,
		Severity:    severity,
		Description: fmt.Sprintf("Large transaction detected (%.2f %s)", txn.Amount.Value, txn.Amount.Currency),
	}
}
