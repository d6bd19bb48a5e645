package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors for Transaction.
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEmptyClientID       = errors.New("client_id is required")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrEmptyCurrency       = errors.New("currency is required")
	ErrEmptyCounterparty   = errors.New("counterparty is required")
	ErrInvalidType         = errors.New("type must be 'deposit', 'withdraw', or 'transfer'")
)

// Money is an amount in its native currency. No conversion is ever applied;
// aggregates that sum Money values across currencies do so deliberately (see
// the report package).
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency_code"`
}

// Transaction represents a single monetary movement for a client.
// Transactions are immutable once created.
type Transaction struct {
	// ID is the unique identifier for this transaction.
	ID string `json:"id"`

	// ClientID references the owning client.
	ClientID string `json:"client_id"`

	// ClientName is a denormalized copy of the client's name, cached for
	// display only. The client record is authoritative.
	ClientName string `json:"client_name,omitempty"`

	// Type is the transaction direction.
	Type TransactionType `json:"type"`

	// Amount is the transacted amount in its native currency.
	Amount Money `json:"amount"`

	// Counterparty is the name of the other party.
	Counterparty string `json:"counterparty"`

	// CounterpartyCountry is the 2-letter country code of the other party.
	CounterpartyCountry string `json:"counterparty_country"`

	// OccurredAt is when the transaction took place.
	OccurredAt time.Time `json:"occurred_at"`

	// CreatedAt is when the record entered the system.
	CreatedAt time.Time `json:"created_at"`
}

// CreateTransactionRequest represents the input for recording a transaction.
type CreateTransactionRequest struct {
	ClientID            string          `json:"client_id"`
	Type                TransactionType `json:"type"`
	Amount              float64         `json:"amount"`
	Currency            string          `json:"currency_code"`
	Counterparty        string          `json:"counterparty"`
	CounterpartyCountry string          `json:"counterparty_country"`
	OccurredAt          time.Time       `json:"occurred_at"`
}

// Validate checks if the request has all required fields with valid values.
func (r *CreateTransactionRequest) Validate() error {
	if r.ClientID == "" {
		return ErrEmptyClientID
	}
	if !r.Type.IsValid() {
		return ErrInvalidType
	}
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.Currency == "" {
		return ErrEmptyCurrency
	}
	if strings.TrimSpace(r.Counterparty) == "" {
		return ErrEmptyCounterparty
	}
	if r.CounterpartyCountry != "" && len(r.CounterpartyCountry) != 2 {
		return ErrInvalidCountryCode
	}
	return nil
}

// NewTransaction creates a transaction from a validated request. The caller
// supplies the owning client so the denormalized name is populated.
func NewTransaction(req *CreateTransactionRequest, client *Client) *Transaction {
	now := time.Now().UTC()
	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}
	return &Transaction{
		ID:         uuid.NewString(),
		ClientID:   client.ID,
		ClientName: client.Name,
		Type:       req.Type,
		Amount: Money{
			Value:    req.Amount,
			Currency: strings.ToUpper(req.Currency),
		},
		Counterparty:        strings.TrimSpace(req.Counterparty),
		CounterpartyCountry: strings.ToUpper(req.CounterpartyCountry),
		OccurredAt:          occurredAt,
		CreatedAt:           now,
	}
}

// TransactionEvent is the message published to the queue when a transaction
// is recorded. The screening processor consumes it asynchronously.
type TransactionEvent struct {
	Transaction Transaction `json:"transaction"`

	// ReceivedAt is when the ingest service accepted the transaction.
	ReceivedAt time.Time `json:"received_at"`
}
