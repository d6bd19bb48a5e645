package domain

import (
	"errors"
	"time"
)

// Lookup errors for rules and risk countries.
var (
	ErrRuleNotFound        = errors.New("compliance rule not found")
	ErrRiskCountryNotFound = errors.New("risk country not found")
)

// Parameter names used in ComplianceRule.Parameters.
const (
	ParamDailyLimit      = "daily_limit"
	ParamBandLow         = "band_low"
	ParamBandHigh        = "band_high"
	ParamMinCount        = "min_count"
	ParamLargeAmount     = "large_amount"
	ParamVeryLargeAmount = "very_large_amount"
)

// ComplianceRule describes one screening rule and its numeric thresholds.
// Rules are evaluated by the screening service against every incoming
// transaction; inactive rules are skipped.
type ComplianceRule struct {
	// ID is the unique identifier for this rule.
	ID string `json:"id"`

	// Code identifies the rule family (one alert RuleCode per rule).
	Code RuleCode `json:"code"`

	// Name is a short human-readable rule name.
	Name string `json:"name"`

	// Description explains what the rule detects.
	Description string `json:"description"`

	// Parameters holds the numeric thresholds the rule evaluates against,
	// keyed by the Param* constants.
	Parameters map[string]float64 `json:"parameters"`

	// IsActive controls whether the screening service evaluates the rule.
	IsActive bool `json:"is_active"`

	// CreatedAt is when the rule was created.
	CreatedAt time.Time `json:"created_at"`
}

// Param returns the named parameter, or the fallback when it is absent.
func (r *ComplianceRule) Param(name string, fallback float64) float64 {
	if v, ok := r.Parameters[name]; ok {
		return v
	}
	return fallback
}

// RiskCountry is an entry on the counterparty country risk list.
type RiskCountry struct {
	// ID is the unique identifier for this entry.
	ID string `json:"id"`

	// CountryCode is the 2-letter country code, uppercase.
	CountryCode string `json:"country_code"`

	// CountryName is the display name of the country.
	CountryName string `json:"country_name"`

	// RiskLevel classifies the country (medium, high, blocked).
	RiskLevel CountryRiskLevel `json:"risk_level"`

	// IsActive controls whether the entry is consulted during screening.
	IsActive bool `json:"is_active"`

	// CreatedAt is when the entry was created.
	CreatedAt time.Time `json:"created_at"`
}
