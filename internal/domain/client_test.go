package domain

import (
	"errors"
	"testing"
)

func TestCreateClientRequest_Validate(t *testing.T) {
	valid := CreateClientRequest{
		Name:      "Empresa Alpha Ltda",
		Country:   "BR",
		RiskLevel: RiskLow,
		KYCStatus: KYCVerified,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	missingName := valid
	missingName.Name = "  "
	if err := missingName.Validate(); !errors.Is(err, ErrEmptyClientName) {
		t.Errorf("Validate() error = %v, want ErrEmptyClientName", err)
	}

	missingCountry := valid
	missingCountry.Country = ""
	if err := missingCountry.Validate(); !errors.Is(err, ErrEmptyCountry) {
		t.Errorf("Validate() error = %v, want ErrEmptyCountry", err)
	}
}

func TestCreateClientRequest_Validate_ThreeLetterCountryRejected(t *testing.T) {
	req := CreateClientRequest{
		Name:      "Offshore Holdings SA",
		Country:   "BRA",
		RiskLevel: RiskHigh,
		KYCStatus: KYCPending,
	}

	err := req.Validate()
	if !errors.Is(err, ErrInvalidCountryCode) {
		t.Errorf("Validate() error = %v, want ErrInvalidCountryCode", err)
	}
}

func TestNewClient_UppercasesCountry(t *testing.T) {
	req := &CreateClientRequest{
		Name:      "Nordic Finance AB",
		Country:   "se",
		RiskLevel: RiskLow,
		KYCStatus: KYCPending,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	client := NewClient(req)

	if client.Country != "SE" {
		t.Errorf("Country = %q, want %q", client.Country, "SE")
	}
	if client.ID == "" {
		t.Error("ID should be assigned")
	}
	if client.CreatedAt.IsZero() || client.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestClient_Apply(t *testing.T) {
	client := NewClient(&CreateClientRequest{
		Name:      "Global Trading Inc",
		Country:   "US",
		RiskLevel: RiskMedium,
		KYCStatus: KYCPending,
	})
	before := client.UpdatedAt

	high := RiskHigh
	verified := KYCVerified
	client.Apply(&UpdateClientRequest{RiskLevel: &high, KYCStatus: &verified})

	if client.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %v, want %v", client.RiskLevel, RiskHigh)
	}
	if client.KYCStatus != KYCVerified {
		t.Errorf("KYCStatus = %v, want %v", client.KYCStatus, KYCVerified)
	}
	if client.UpdatedAt.Before(before) {
		t.Error("UpdatedAt should advance")
	}
}
