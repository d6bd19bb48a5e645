package api

import (
	"strconv"
	"time"

	"watchdog-go/internal/domain"
)

// The wire format carries enums as numeric codes; the conversion to and from
// the canonical string values happens here and nowhere else. Query-string
// filters additionally accept the string names (including the legacy
// uppercase spellings) and the "all" sentinel, which maps to no filter.

// MoneyDTO is the wire form of an amount.
type MoneyDTO struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency_code"`
}

// ClientResponse is the wire form of a client.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	RiskLevel int       `json:"risk_level"`
	KYCStatus int       `json:"kyc_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func clientResponse(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Country:   c.Country,
		RiskLevel: c.RiskLevel.Code(),
		KYCStatus: c.KYCStatus.Code(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func clientResponses(clients []*domain.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientResponse(c))
	}
	return out
}

// CreateClientBody is the request body for registering a client.
type CreateClientBody struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	RiskLevel int    `json:"risk_level"`
	KYCStatus int    `json:"kyc_status"`
}

// toDomain converts the body to a domain request. Unknown codes surface as
// zero values, which fail domain validation with the right error.
func (b *CreateClientBody) toDomain() *domain.CreateClientRequest {
	req := &domain.CreateClientRequest{
		Name:    b.Name,
		Country: b.Country,
	}
	if risk, ok := domain.RiskLevelFromCode(b.RiskLevel); ok {
		req.RiskLevel = risk
	}
	if kyc, ok := domain.KYCStatusFromCode(b.KYCStatus); ok {
		req.KYCStatus = kyc
	}
	return req
}

// UpdateClientBody is the request body for changing a client's risk level or
// KYC status. Absent fields are left untouched.
type UpdateClientBody struct {
	RiskLevel *int `json:"risk_level"`
	KYCStatus *int `json:"kyc_status"`
}

func (b *UpdateClientBody) toDomain() (*domain.UpdateClientRequest, bool) {
	req := &domain.UpdateClientRequest{}
	if b.RiskLevel != nil {
		risk, ok := domain.RiskLevelFromCode(*b.RiskLevel)
		if !ok {
			return nil, false
		}
		req.RiskLevel = &risk
	}
	if b.KYCStatus != nil {
		kyc, ok := domain.KYCStatusFromCode(*b.KYCStatus)
		if !ok {
			return nil, false
		}
		req.KYCStatus = &kyc
	}
	return req, true
}

// TransactionResponse is the wire form of a transaction.
type TransactionResponse struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	ClientName          string    `json:"client_name"`
	Type                int       `json:"type"`
	Amount              MoneyDTO  `json:"amount"`
	Counterparty        string    `json:"counterparty"`
	CounterpartyCountry string    `json:"counterparty_country,omitempty"`
	OccurredAt          time.Time `json:"occurred_at"`
	CreatedAt           time.Time `json:"created_at"`
}

func transactionResponse(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                  t.ID,
		ClientID:            t.ClientID,
		ClientName:          t.ClientName,
		Type:                t.Type.Code(),
		Amount:              MoneyDTO{Value: t.Amount.Value, Currency: t.Amount.Currency},
		Counterparty:        t.Counterparty,
		CounterpartyCountry: t.CounterpartyCountry,
		OccurredAt:          t.OccurredAt,
		CreatedAt:           t.CreatedAt,
	}
}

func transactionResponses(txns []*domain.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, transactionResponse(t))
	}
	return out
}

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	ClientID            string    `json:"client_id"`
	Type                int       `json:"type"`
	Amount              float64   `json:"amount"`
	Currency            string    `json:"currency_code"`
	Counterparty        string    `json:"counterparty"`
	CounterpartyCountry string    `json:"counterparty_country"`
	OccurredAt          time.Time `json:"occurred_at"`
}

func (b *CreateTransactionBody) toDomain() *domain.CreateTransactionRequest {
	req := &domain.CreateTransactionRequest{
		ClientID:            b.ClientID,
		Amount:              b.Amount,
		Currency:            b.Currency,
		Counterparty:        b.Counterparty,
		CounterpartyCountry: b.CounterpartyCountry,
		OccurredAt:          b.OccurredAt,
	}
	if typ, ok := domain.TransactionTypeFromCode(b.Type); ok {
		req.Type = typ
	}
	return req
}

// AlertResponse is the wire form of an alert.
type AlertResponse struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	ClientName      string     `json:"client_name"`
	TransactionID   string     `json:"transaction_id"`
	RuleCode        int        `json:"rule_code"`
	RuleDescription string     `json:"rule_description"`
	Severity        int        `json:"severity"`
	Status          int        `json:"status"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func alertResponse(a *domain.Alert) *AlertResponse {
	return &AlertResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		TransactionID:   a.TransactionID,
		RuleCode:        a.RuleCode.Code(),
		RuleDescription: a.RuleDescription,
		Severity:        a.Severity.Code(),
		Status:          a.Status.Code(),
		ResolutionNotes: a.ResolutionNotes,
		ResolvedBy:      a.ResolvedBy,
		ResolvedAt:      a.ResolvedAt,
		CreatedAt:       a.CreatedAt,
	}
}

func alertResponses(alerts []*domain.Alert) []*AlertResponse {
	out := make([]*AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertResponse(a))
	}
	return out
}

// UpdateAlertStatusBody is the request body for moving an alert through its
// lifecycle.
type UpdateAlertStatusBody struct {
	Status     int    `json:"status"`
	Notes      string `json:"notes"`
	ResolvedBy string `json:"resolved_by"`
}

// ClientReportResponse is the wire form of a per-client rollup.
type ClientReportResponse struct {
	ClientID          string  `json:"client_id"`
	ClientName        string  `json:"client_name"`
	TotalTransactions int     `json:"total_transactions"`
	TotalVolume       float64 `json:"total_volume"`
	AlertCount        int     `json:"alert_count"`
	RiskLevel         int     `json:"risk_level"`
}

func reportResponses(reports []*domain.ClientReport) []*ClientReportResponse {
	out := make([]*ClientReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, &ClientReportResponse{
			ClientID:          r.ClientID,
			ClientName:        r.ClientName,
			TotalTransactions: r.TotalTransactions,
			TotalVolume:       r.TotalVolume,
			AlertCount:        r.AlertCount,
			RiskLevel:         r.RiskLevel.Code(),
		})
	}
	return out
}

// filterAll reports whether the query value means "do not filter".
func filterAll(s string) bool {
	return s == "" || s == "all"
}

// parseRiskLevelParam parses a risk level query value. It accepts numeric
// codes and string names; "all" and empty mean no filter (zero value).
func parseRiskLevelParam(s string) (domain.RiskLevel, bool) {
	if filterAll(s) {
		return "", true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return domain.RiskLevelFromCode(code)
	}
	return domain.ParseRiskLevel(s)
}

func parseKYCStatusParam(s string) (domain.KYCStatus, bool) {
	if filterAll(s) {
		return "", true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return domain.KYCStatusFromCode(code)
	}
	return domain.ParseKYCStatus(s)
}

func parseTransactionTypeParam(s string) (domain.TransactionType, bool) {
	if filterAll(s) {
		return "", true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return domain.TransactionTypeFromCode(code)
	}
	return domain.ParseTransactionType(s)
}

func parseAlertStatusParam(s string) (domain.AlertStatus, bool) {
	if filterAll(s) {
		return "", true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return domain.AlertStatusFromCode(code)
	}
	return domain.ParseAlertStatus(s)
}

func parseAlertSeverityParam(s string) (domain.AlertSeverity, bool) {
	if filterAll(s) {
		return "", true
	}
	if code, err := strconv.Atoi(s); err == nil {
		return domain.AlertSeverityFromCode(code)
	}
	return domain.ParseAlertSeverity(s)
}
