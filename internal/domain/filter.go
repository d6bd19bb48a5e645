package domain

import "strings"

// Filters reduce a full collection to the subset matching user-chosen
// criteria. All predicates compose conjunctively, and the zero value of every
// field means "match everything" for that field (the UI's "all" sentinel maps
// to the zero value at the API boundary). An empty search string matches
// everything.

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ClientFilter provides filtering options for querying clients.
type ClientFilter struct {
	// Search matches case-insensitively against name or country.
	Search    string
	RiskLevel RiskLevel
	KYCStatus KYCStatus
}

// Matches reports whether the client satisfies every active predicate.
func (f ClientFilter) Matches(c *Client) bool {
	if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Country, f.Search) {
		return false
	}
	if f.RiskLevel != "" && c.RiskLevel != f.RiskLevel {
		return false
	}
	if f.KYCStatus != "" && c.KYCStatus != f.KYCStatus {
		return false
	}
	return true
}

// TransactionFilter provides filtering options for querying transactions.
type TransactionFilter struct {
	// Search matches case-insensitively against client name or counterparty.
	Search   string
	Type     TransactionType
	ClientID string
}

// Matches reports whether the transaction satisfies every active predicate.
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.Search != "" && !containsFold(t.ClientName, f.Search) && !containsFold(t.Counterparty, f.Search) {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.ClientID != "" && t.ClientID != f.ClientID {
		return false
	}
	return true
}

// AlertFilter provides filtering options for querying alerts.
type AlertFilter struct {
	// Search matches case-insensitively against client name or rule
	// description.
	Search   string
	Status   AlertStatus
	Severity AlertSeverity
	ClientID string
}

// Matches reports whether the alert satisfies every active predicate.
func (f AlertFilter) Matches(a *Alert) bool {
	if f.Search != "" && !containsFold(a.ClientName, f.Search) && !containsFold(a.RuleDescription, f.Search) {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	if f.ClientID != "" && a.ClientID != f.ClientID {
		return false
	}
	return true
}
