package domain

// DashboardStats is the fixed set of scalar counters shown on the dashboard.
// Counters are recomputed from the collections on every read, never cached.
type DashboardStats struct {
	// TotalClients is the count of all clients.
	TotalClients int `json:"total_clients"`

	// HighRiskClients is the count of clients at the high risk level.
	HighRiskClients int `json:"high_risk_clients"`

	// TransactionsToday is the count of transactions that occurred on the
	// current calendar date.
	TransactionsToday int `json:"transactions_today"`

	// TransactionVolumeToday is the summed amount of today's transactions.
	// Amounts are summed in their native currencies with no conversion.
	TransactionVolumeToday float64 `json:"transaction_volume_today"`

	// ActiveAlerts is the count of alerts still open (new or review).
	ActiveAlerts int `json:"active_alerts"`

	// CriticalAlerts is the count of critical-severity alerts still open.
	CriticalAlerts int `json:"critical_alerts"`

	// ResolvedAlertsToday is the count of alerts resolved on the current
	// calendar date.
	ResolvedAlertsToday int `json:"resolved_alerts_today"`

	// PendingKYC is the count of clients awaiting KYC verification.
	PendingKYC int `json:"pending_kyc"`
}

// ClientReport is the per-client rollup used for reporting and export.
type ClientReport struct {
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`

	// TotalTransactions is the count of the client's transactions.
	TotalTransactions int `json:"total_transactions"`

	// TotalVolume is the sum of the client's transaction amounts, summed
	// across native currencies with no conversion.
	TotalVolume float64 `json:"total_volume"`

	// AlertCount is the count of the client's alerts, all statuses.
	AlertCount int `json:"alert_count"`

	// RiskLevel is the client's current risk level at read time.
	RiskLevel RiskLevel `json:"risk_level"`
}
