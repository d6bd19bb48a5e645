// Package domain contains the core business entities and value objects for
// Watchdog. These models represent the ubiquitous language of the compliance
// monitoring domain.
//
// Enums are represented as typed string constants in memory. The numeric wire
// codes used by the backend convention live here as well, in a single mapping
// table per enum, so that conversion happens in exactly one place. Parse
// functions accept the legacy uppercase string forms of the old data model and
// fold the values that no longer exist (CRITICAL risk, EXPIRED KYC, DISMISSED
// status) into their canonical equivalents.
package domain

import "strings"

// RiskLevel is the ordered classification of a client's compliance risk.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid returns true if the risk level is a known value.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// Code returns the numeric wire code for the risk level.
func (r RiskLevel) Code() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

// Label returns the uppercase display label used in exports.
func (r RiskLevel) Label() string {
	return strings.ToUpper(string(r))
}

// RiskLevelFromCode maps a numeric wire code back to a risk level.
func RiskLevelFromCode(code int) (RiskLevel, bool) {
	switch code {
	case 0:
		return RiskLow, true
	case 1:
		return RiskMedium, true
	case 2:
		return RiskHigh, true
	default:
		return "", false
	}
}

// ParseRiskLevel parses a string form of a risk level. The legacy CRITICAL
// level folds into high: the canonical model has no client-level critical.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch strings.ToUpper(s) {
	case "LOW":
		return RiskLow, true
	case "MEDIUM":
		return RiskMedium, true
	case "HIGH", "CRITICAL":
		return RiskHigh, true
	default:
		return "", false
	}
}

// KYCStatus is the client identity verification status.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

// IsValid returns true if the KYC status is a known value.
func (k KYCStatus) IsValid() bool {
	switch k {
	case KYCPending, KYCVerified, KYCRejected:
		return true
	default:
		return false
	}
}

// Code returns the numeric wire code for the KYC status.
func (k KYCStatus) Code() int {
	switch k {
	case KYCPending:
		return 0
	case KYCVerified:
		return 1
	case KYCRejected:
		return 2
	default:
		return -1
	}
}

// Label returns the uppercase display label used in exports.
func (k KYCStatus) Label() string {
	return strings.ToUpper(string(k))
}

// KYCStatusFromCode maps a numeric wire code back to a KYC status.
func KYCStatusFromCode(code int) (KYCStatus, bool) {
	switch code {
	case 0:
		return KYCPending, true
	case 1:
		return KYCVerified, true
	case 2:
		return KYCRejected, true
	default:
		return "", false
	}
}

// ParseKYCStatus parses a string form of a KYC status. APPROVED is an alias
// for verified; the legacy EXPIRED status folds into rejected.
func ParseKYCStatus(s string) (KYCStatus, bool) {
	switch strings.ToUpper(s) {
	case "PENDING":
		return KYCPending, true
	case "VERIFIED", "APPROVED":
		return KYCVerified, true
	case "REJECTED", "EXPIRED":
		return KYCRejected, true
	default:
		return "", false
	}
}

// TransactionType identifies the direction of a transaction.
type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypeTransfer TransactionType = "transfer"
)

// IsValid returns true if the transaction type is a known value.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeDeposit, TypeWithdraw, TypeTransfer:
		return true
	default:
		return false
	}
}

// Code returns the numeric wire code for the transaction type.
func (t TransactionType) Code() int {
	switch t {
	case TypeDeposit:
		return 1
	case TypeWithdraw:
		return 2
	case TypeTransfer:
		return 3
	default:
		return -1
	}
}

// Label returns the uppercase display label used in exports.
func (t TransactionType) Label() string {
	return strings.ToUpper(string(t))
}

// TransactionTypeFromCode maps a numeric wire code back to a transaction type.
func TransactionTypeFromCode(code int) (TransactionType, bool) {
	switch code {
	case 1:
		return TypeDeposit, true
	case 2:
		return TypeWithdraw, true
	case 3:
		return TypeTransfer, true
	default:
		return "", false
	}
}

// ParseTransactionType parses a string form of a transaction type. WITHDRAWAL
// is the legacy spelling of withdraw.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToUpper(s) {
	case "DEPOSIT":
		return TypeDeposit, true
	case "WITHDRAW", "WITHDRAWAL":
		return TypeWithdraw, true
	case "TRANSFER":
		return TypeTransfer, true
	default:
		return "", false
	}
}

// AlertSeverity is the ordered severity level of a compliance alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// IsValid returns true if the severity is a known value.
func (s AlertSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Code returns the numeric wire code for the severity.
func (s AlertSeverity) Code() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return -1
	}
}

// Label returns the uppercase display label used in exports.
func (s AlertSeverity) Label() string {
	return strings.ToUpper(string(s))
}

// AlertSeverityFromCode maps a numeric wire code back to a severity.
func AlertSeverityFromCode(code int) (AlertSeverity, bool) {
	switch code {
	case 1:
		return SeverityLow, true
	case 2:
		return SeverityMedium, true
	case 3:
		return SeverityHigh, true
	case 4:
		return SeverityCritical, true
	default:
		return "", false
	}
}

// ParseAlertSeverity parses a string form of an alert severity.
func ParseAlertSeverity(s string) (AlertSeverity, bool) {
	switch strings.ToUpper(s) {
	case "LOW":
		return SeverityLow, true
	case "MEDIUM":
		return SeverityMedium, true
	case "HIGH":
		return SeverityHigh, true
	case "CRITICAL":
		return SeverityCritical, true
	default:
		return "", false
	}
}

// AlertStatus represents the current state of an alert in its lifecycle.
// The canonical model has three states; the legacy DISMISSED terminal state
// folds into resolved.
type AlertStatus string

const (
	StatusNew      AlertStatus = "new"
	StatusReview   AlertStatus = "review"
	StatusResolved AlertStatus = "resolved"
)

// IsValid returns true if the status is a known value.
func (s AlertStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusReview, StatusResolved:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transitions are permitted.
func (s AlertStatus) IsTerminal() bool {
	return s == StatusResolved
}

// Code returns the numeric wire code for the status.
func (s AlertStatus) Code() int {
	switch s {
	case StatusNew:
		return 1
	case StatusReview:
		return 2
	case StatusResolved:
		return 3
	default:
		return -1
	}
}

// Label returns the uppercase display label used in exports.
func (s AlertStatus) Label() string {
	return strings.ToUpper(string(s))
}

// AlertStatusFromCode maps a numeric wire code back to a status.
func AlertStatusFromCode(code int) (AlertStatus, bool) {
	switch code {
	case 1:
		return StatusNew, true
	case 2:
		return StatusReview, true
	case 3:
		return StatusResolved, true
	default:
		return "", false
	}
}

// ParseAlertStatus parses a string form of an alert status. UNDER_REVIEW is
// the legacy spelling of review; the legacy DISMISSED folds into resolved.
func ParseAlertStatus(s string) (AlertStatus, bool) {
	switch strings.ToUpper(s) {
	case "NEW":
		return StatusNew, true
	case "REVIEW", "UNDER_REVIEW":
		return StatusReview, true
	case "RESOLVED", "DISMISSED":
		return StatusResolved, true
	default:
		return "", false
	}
}

// RuleCode identifies which compliance rule produced an alert.
type RuleCode string

const (
	RuleDailyLimit        RuleCode = "daily_limit"
	RuleHighFrequency     RuleCode = "high_frequency"
	RuleSuspiciousCountry RuleCode = "suspicious_country"
	RuleLargeAmount       RuleCode = "large_amount"
)

// IsValid returns true if the rule code is a known value.
func (r RuleCode) IsValid() bool {
	switch r {
	case RuleDailyLimit, RuleHighFrequency, RuleSuspiciousCountry, RuleLargeAmount:
		return true
	default:
		return false
	}
}

// Code returns the numeric wire code for the rule code.
func (r RuleCode) Code() int {
	switch r {
	case RuleDailyLimit:
		return 1
	case RuleHighFrequency:
		return 2
	case RuleSuspiciousCountry:
		return 3
	case RuleLargeAmount:
		return 4
	default:
		return -1
	}
}

// RuleCodeFromCode maps a numeric wire code back to a rule code.
func RuleCodeFromCode(code int) (RuleCode, bool) {
	switch code {
	case 1:
		return RuleDailyLimit, true
	case 2:
		return RuleHighFrequency, true
	case 3:
		return RuleSuspiciousCountry, true
	case 4:
		return RuleLargeAmount, true
	default:
		return "", false
	}
}

// CountryRiskLevel classifies a counterparty country on the risk list.
type CountryRiskLevel string

const (
	CountryRiskMedium  CountryRiskLevel = "medium"
	CountryRiskHigh    CountryRiskLevel = "high"
	CountryRiskBlocked CountryRiskLevel = "blocked"
)

// IsValid returns true if the country risk level is a known value.
func (c CountryRiskLevel) IsValid() bool {
	switch c {
	case CountryRiskMedium, CountryRiskHigh, CountryRiskBlocked:
		return true
	default:
		return false
	}
}
