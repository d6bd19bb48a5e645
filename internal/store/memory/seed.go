package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"watchdog-go/internal/domain"
)

// Repositories groups the in-memory repositories so they can be seeded and
// wired together.
type Repositories struct {
	Clients       *ClientRepository
	Transactions  *TransactionRepository
	Alerts        *AlertRepository
	Rules         *RuleRepository
	RiskCountries *RiskCountryRepository
}

// NewRepositories creates the full set of in-memory repositories.
func NewRepositories() *Repositories {
	return &Repositories{
		Clients:       NewClientRepository(),
		Transactions:  NewTransactionRepository(),
		Alerts:        NewAlertRepository(),
		Rules:         NewRuleRepository(),
		RiskCountries: NewRiskCountryRepository(),
	}
}

// Seed loads the demo dataset: eight clients, ten transactions, seven alerts,
// the four screening rules, and the country risk list. The dataset stands in
// for a real backend while running in memory mode. Recent activity is dated
// relative to now so the calendar-day dashboard counters have data to show.
func (r *Repositories) Seed(ctx context.Context) error {
	now := time.Now().UTC()
	today := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, time.UTC)
	}
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	clients := []*domain.Client{
		{ID: uuid.NewString(), Name: "Empresa Alpha Ltda", Country: "BR", RiskLevel: domain.RiskLow, KYCStatus: domain.KYCVerified, CreatedAt: daysAgo(340), UpdatedAt: daysAgo(80)},
		{ID: uuid.NewString(), Name: "Global Trading Inc", Country: "US", RiskLevel: domain.RiskMedium, KYCStatus: domain.KYCVerified, CreatedAt: daysAgo(300), UpdatedAt: daysAgo(60)},
		{ID: uuid.NewString(), Name: "Offshore Holdings SA", Country: "PA", RiskLevel: domain.RiskHigh, KYCStatus: domain.KYCPending, CreatedAt: daysAgo(260), UpdatedAt: daysAgo(30)},
		{ID: uuid.NewString(), Name: "Tech Solutions GmbH", Country: "DE", RiskLevel: domain.RiskLow, KYCStatus: domain.KYCVerified, CreatedAt: daysAgo(230), UpdatedAt: daysAgo(25)},
		{ID: uuid.NewString(), Name: "Eastern Imports Ltd", Country: "RU", RiskLevel: domain.RiskHigh, KYCStatus: domain.KYCRejected, CreatedAt: daysAgo(190), UpdatedAt: daysAgo(20)},
		{ID: uuid.NewString(), Name: "Mediterranean Trade Co", Country: "IT", RiskLevel: domain.RiskMedium, KYCStatus: domain.KYCVerified, CreatedAt: daysAgo(150), UpdatedAt: daysAgo(15)},
		{ID: uuid.NewString(), Name: "Asian Ventures Pte", Country: "SG", RiskLevel: domain.RiskLow, KYCStatus: domain.KYCVerified, CreatedAt: daysAgo(120), UpdatedAt: daysAgo(10)},
		{ID: uuid.NewString(), Name: "Nordic Finance AB", Country: "SE", RiskLevel: domain.RiskLow, KYCStatus: domain.KYCPending, CreatedAt: daysAgo(90), UpdatedAt: daysAgo(5)},
	}
	for _, c := range clients {
		if err := r.Clients.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed client: %w", err)
		}
	}

	alpha, global, offshore, tech, eastern, mediterranean := clients[0], clients[1], clients[2], clients[3], clients[4], clients[5]

	txn := func(c *domain.Client, typ domain.TransactionType, amount float64, currency, counterparty, country string, occurred time.Time) *domain.Transaction {
		return &domain.Transaction{
			ID:                  uuid.NewString(),
			ClientID:            c.ID,
			ClientName:          c.Name,
			Type:                typ,
			Amount:              domain.Money{Value: amount, Currency: currency},
			Counterparty:        counterparty,
			CounterpartyCountry: country,
			OccurredAt:          occurred,
			CreatedAt:           occurred.Add(5 * time.Minute),
		}
	}

	transactions := []*domain.Transaction{
		txn(alpha, domain.TypeDeposit, 150000, "USD", "Bank of America", "US", today(10, 30)),
		txn(offshore, domain.TypeTransfer, 500000, "USD", "Cayman Trust", "KY", today(14, 20)),
		txn(eastern, domain.TypeWithdraw, 75000, "EUR", "Sberbank", "RU", daysAgo(1)),
		txn(global, domain.TypeDeposit, 200000, "USD", "JP Morgan", "US", daysAgo(1)),
		txn(alpha, domain.TypeTransfer, 45000, "BRL", "Itaú Unibanco", "BR", daysAgo(2)),
		txn(offshore, domain.TypeDeposit, 9500, "USD", "Private Bank", "CH", today(8, 0)),
		txn(offshore, domain.TypeDeposit, 9200, "USD", "Private Bank", "CH", today(9, 0)),
		txn(offshore, domain.TypeDeposit, 9800, "USD", "Private Bank", "CH", today(10, 0)),
		txn(tech, domain.TypeTransfer, 125000, "EUR", "Deutsche Bank", "DE", daysAgo(3)),
		txn(mediterranean, domain.TypeDeposit, 85000, "EUR", "UniCredit", "IT", daysAgo(4)),
	}
	for _, t := range transactions {
		if err := r.Transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	resolvedToday := today(16, 20)
	resolvedEarlier := daysAgo(3).Add(4 * time.Hour)

	alerts := []*domain.Alert{
		{
			ID: uuid.NewString(), ClientID: offshore.ID, ClientName: offshore.Name,
			TransactionID: transactions[1].ID, RuleCode: domain.RuleSuspiciousCountry,
			RuleDescription: "Transfer to high-risk country (Cayman Islands)",
			Severity:        domain.SeverityHigh, Status: domain.StatusNew,
			CreatedAt: today(14, 30),
		},
		{
			ID: uuid.NewString(), ClientID: eastern.ID, ClientName: eastern.Name,
			TransactionID: transactions[2].ID, RuleCode: domain.RuleSuspiciousCountry,
			RuleDescription: "Transaction with blocked country (Russia)",
			Severity:        domain.SeverityCritical, Status: domain.StatusReview,
			CreatedAt: daysAgo(1),
		},
		{
			ID: uuid.NewString(), ClientID: offshore.ID, ClientName: offshore.Name,
			TransactionID: transactions[5].ID, RuleCode: domain.RuleHighFrequency,
			RuleDescription: "Possible structuring detected: multiple transactions just under $10,000",
			Severity:        domain.SeverityHigh, Status: domain.StatusNew,
			CreatedAt: today(10, 15),
		},
		{
			ID: uuid.NewString(), ClientID: alpha.ID, ClientName: alpha.Name,
			TransactionID: transactions[0].ID, RuleCode: domain.RuleDailyLimit,
			RuleDescription: "Daily limit exceeded (150000.00 > 100000.00)",
			Severity:        domain.SeverityMedium, Status: domain.StatusResolved,
			ResolvedBy: "joao.silva", ResolvedAt: &resolvedToday,
			ResolutionNotes: "Client provided supporting documentation",
			CreatedAt:       today(10, 40),
		},
		{
			ID: uuid.NewString(), ClientID: global.ID, ClientName: global.Name,
			TransactionID: transactions[3].ID, RuleCode: domain.RuleDailyLimit,
			RuleDescription: "Daily limit exceeded (200000.00 > 100000.00)",
			Severity:        domain.SeverityMedium, Status: domain.StatusNew,
			CreatedAt: daysAgo(1),
		},
		{
			ID: uuid.NewString(), ClientID: tech.ID, ClientName: tech.Name,
			TransactionID: transactions[8].ID, RuleCode: domain.RuleLargeAmount,
			RuleDescription: "Large transaction detected (125000.00 EUR)",
			Severity:        domain.SeverityMedium, Status: domain.StatusResolved,
			ResolvedBy: "maria.santos", ResolvedAt: &resolvedEarlier,
			ResolutionNotes: "Regular transaction, service contract verified",
			CreatedAt:       daysAgo(3),
		},
		{
			ID: uuid.NewString(), ClientID: mediterranean.ID, ClientName: mediterranean.Name,
			TransactionID: transactions[9].ID, RuleCode: domain.RuleLargeAmount,
			RuleDescription: "Large transaction detected (85000.00 EUR)",
			Severity:        domain.SeverityLow, Status: domain.StatusReview,
			CreatedAt: daysAgo(4),
		},
	}
	for _, a := range alerts {
		if err := r.Alerts.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed alert: %w", err)
		}
	}

	if err := r.SeedReferenceData(ctx); err != nil {
		return err
	}
	return nil
}

// SeedReferenceData loads only the screening rules and the country risk
// list, without any demo clients or activity.
func (r *Repositories) SeedReferenceData(ctx context.Context) error {
	now := time.Now().UTC()

	rules := []*domain.ComplianceRule{
		{
			ID: uuid.NewString(), Code: domain.RuleDailyLimit,
			Name:        "Daily limit",
			Description: "Client's same-day volume exceeds the daily limit",
			Parameters:  map[string]float64{domain.ParamDailyLimit: 100000},
			IsActive:    true, CreatedAt: now,
		},
		{
			ID: uuid.NewString(), Code: domain.RuleHighFrequency,
			Name:        "Structuring",
			Description: "Repeated same-day transactions just under the reporting threshold",
			Parameters: map[string]float64{
				domain.ParamBandLow:  9000,
				domain.ParamBandHigh: 10000,
				domain.ParamMinCount: 3,
			},
			IsActive: true, CreatedAt: now,
		},
		{
			ID: uuid.NewString(), Code: domain.RuleSuspiciousCountry,
			Name:        "Suspicious country",
			Description: "Counterparty country appears on the risk list",
			IsActive:    true, CreatedAt: now,
		},
		{
			ID: uuid.NewString(), Code: domain.RuleLargeAmount,
			Name:        "Large amount",
			Description: "Single transaction at or above the large-amount threshold",
			Parameters: map[string]float64{
				domain.ParamLargeAmount:     50000,
				domain.ParamVeryLargeAmount: 100000,
			},
			IsActive: true, CreatedAt: now,
		},
	}
	for _, rule := range rules {
		if err := r.Rules.Create(ctx, rule); err != nil {
			return fmt.Errorf("failed to seed rule: %w", err)
		}
	}

	countries := []*domain.RiskCountry{
		{ID: uuid.NewString(), CountryCode: "KY", CountryName: "Cayman Islands", RiskLevel: domain.CountryRiskHigh, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), CountryCode: "PA", CountryName: "Panama", RiskLevel: domain.CountryRiskHigh, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), CountryCode: "VG", CountryName: "British Virgin Islands", RiskLevel: domain.CountryRiskHigh, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), CountryCode: "RU", CountryName: "Russia", RiskLevel: domain.CountryRiskBlocked, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), CountryCode: "IR", CountryName: "Iran", RiskLevel: domain.CountryRiskBlocked, IsActive: true, CreatedAt: now},
		{ID: uuid.NewString(), CountryCode: "KP", CountryName: "North Korea", RiskLevel: domain.CountryRiskBlocked, IsActive: true, CreatedAt: now},
	}
	for _, rc := range countries {
		if err := r.RiskCountries.Create(ctx, rc); err != nil {
			return fmt.Errorf("failed to seed risk country: %w", err)
		}
	}

	return nil
}
