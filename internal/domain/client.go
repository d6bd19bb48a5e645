package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors for Client.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrEmptyClientName    = errors.New("name is required")
	ErrEmptyCountry       = errors.New("country is required")
	ErrInvalidCountryCode = errors.New("country code must be exactly 2 characters")
	ErrInvalidRiskLevel   = errors.New("risk level must be 'low', 'medium', or 'high'")
	ErrInvalidKYCStatus   = errors.New("kyc status must be 'pending', 'verified', or 'rejected'")
)

// Client represents a monitored client of the institution.
type Client struct {
	// ID is the unique identifier for this client.
	ID string `json:"id"`

	// Name is the client's legal name.
	Name string `json:"name"`

	// Country is the ISO 3166-1 alpha-2 country code, stored uppercase.
	Country string `json:"country"`

	// RiskLevel is the client's current compliance risk classification.
	RiskLevel RiskLevel `json:"risk_level"`

	// KYCStatus is the client's identity verification status.
	KYCStatus KYCStatus `json:"kyc_status"`

	// CreatedAt is when the client record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the client record was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest represents the input for registering a new client.
type CreateClientRequest struct {
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	RiskLevel RiskLevel `json:"risk_level"`
	KYCStatus KYCStatus `json:"kyc_status"`
}

// Validate checks if the request has all required fields with valid values.
// Returns an error describing the first validation failure, or nil if valid.
func (r *CreateClientRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyClientName
	}
	if r.Country == "" {
		return ErrEmptyCountry
	}
	if len(r.Country) != 2 {
		return ErrInvalidCountryCode
	}
	if !r.RiskLevel.IsValid() {
		return ErrInvalidRiskLevel
	}
	if !r.KYCStatus.IsValid() {
		return ErrInvalidKYCStatus
	}
	return nil
}

// NewClient creates a client from a validated request. The country code is
// normalized to uppercase for display.
func NewClient(req *CreateClientRequest) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Country:   strings.ToUpper(req.Country),
		RiskLevel: req.RiskLevel,
		KYCStatus: req.KYCStatus,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateClientRequest represents the fields compliance staff may change on an
// existing client. Nil fields are left untouched.
type UpdateClientRequest struct {
	RiskLevel *RiskLevel `json:"risk_level,omitempty"`
	KYCStatus *KYCStatus `json:"kyc_status,omitempty"`
}

// Validate checks that any provided fields hold valid values.
func (r *UpdateClientRequest) Validate() error {
	if r.RiskLevel != nil && !r.RiskLevel.IsValid() {
		return ErrInvalidRiskLevel
	}
	if r.KYCStatus != nil && !r.KYCStatus.IsValid() {
		return ErrInvalidKYCStatus
	}
	return nil
}

// Apply copies the provided fields onto the client and bumps UpdatedAt.
func (c *Client) Apply(req *UpdateClientRequest) {
	if req.RiskLevel != nil {
		c.RiskLevel = *req.RiskLevel
	}
	if req.KYCStatus != nil {
		c.KYCStatus = *req.KYCStatus
	}
	c.UpdatedAt = time.Now().UTC()
}

// IsHighRisk returns true if the client is in the highest risk band.
func (c *Client) IsHighRisk() bool {
	return c.RiskLevel == RiskHigh
}
