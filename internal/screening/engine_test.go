package screening

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"watchdog-go/internal/domain"
	storemem "watchdog-go/internal/store/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestEngine(t *testing.T) (*Engine, *storemem.Repositories) {
	t.Helper()
	repos := storemem.NewRepositories()
	if err := repos.SeedReferenceData(context.Background()); err != nil {
		t.Fatalf("SeedReferenceData() error = %v", err)
	}
	engine := NewEngine(repos.Rules, repos.RiskCountries, storemem.NewStateStore(), testLogger())
	return engine, repos
}

func txn(amount float64, country string) *domain.Transaction {
	return &domain.Transaction{
		ID:                  "t1",
		ClientID:            "c1",
		ClientName:          "Offshore Holdings SA",
		Type:                domain.TypeDeposit,
		Amount:              domain.Money{Value: amount, Currency: "USD"},
		Counterparty:        "Private Bank",
		CounterpartyCountry: country,
		OccurredAt:          time.Now().UTC(),
	}
}

func findByRule(findings []Finding, code domain.RuleCode) *Finding {
	for i := range findings {
		if findings[i].RuleCode == code {
			return &findings[i]
		}
	}
	return nil
}

func TestEngine_CleanTransaction(t *testing.T) {
	engine, _ := newTestEngine(t)

	findings, err := engine.Evaluate(context.Background(), txn(1000, "US"))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("findings = %v, want none", findings)
	}
}

func TestEngine_DailyLimit(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	// First transaction stays under the 100000 limit.
	findings, err := engine.Evaluate(ctx, txn(40000, ""))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if f := findByRule(findings, domain.RuleDailyLimit); f != nil {
		t.Errorf("unexpected daily limit finding: %+v", f)
	}

	// Cumulative 110000 crosses it.
	findings, err = engine.Evaluate(ctx, txn(70000, ""))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	f := findByRule(findings, domain.RuleDailyLimit)
	if f == nil {
		t.Fatal("expected a daily limit finding once cumulative volume crosses the limit")
	}
	if f.Severity != domain.SeverityMedium {
		t.Errorf("Severity = %v, want medium", f.Severity)
	}
}

func TestEngine_StructuringTrio(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	amounts := []float64{9500, 9200, 9800}
	var last []Finding
	for i, amount := range amounts {
		findings, err := engine.Evaluate(ctx, txn(amount, ""))
		if err != nil {
			t.Fatalf("Evaluate(#%d) error = %v", i+1, err)
		}
		last = findings
		if i < 2 && findByRule(findings, domain.RuleHighFrequency) != nil {
			t.Errorf("transaction %d should not yet trigger structuring", i+1)
		}
	}

	f := findByRule(last, domain.RuleHighFrequency)
	if f == nil {
		t.Fatal("third in-band transaction should trigger the structuring rule")
	}
	if f.Severity != domain.SeverityHigh {
		t.Errorf("Severity = %v, want high", f.Severity)
	}
}

func TestEngine_StructuringIgnoresOutOfBandAmounts(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	// Two in-band, one below the band, one at the top edge: never three.
	for _, amount := range []float64{9500, 8999, 10000, 9200} {
		findings, err := engine.Evaluate(ctx, txn(amount, ""))
		if err != nil {
			t.Fatalf("Evaluate() error = %v", err)
		}
		if findByRule(findings, domain.RuleHighFrequency) != nil {
			t.Errorf("amount %v should not complete the structuring pattern", amount)
		}
	}
}

func TestEngine_SuspiciousCountry(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	cases := []struct {
		country string
		want    domain.AlertSeverity
	}{
		{"KY", domain.SeverityHigh},
		{"RU", domain.SeverityCritical},
	}
	for _, tc := range cases {
		findings, err := engine.Evaluate(ctx, txn(1000, tc.country))
		if err != nil {
			t.Fatalf("Evaluate(%s) error = %v", tc.country, err)
		}
		f := findByRule(findings, domain.RuleSuspiciousCountry)
		if f == nil {
			t.Fatalf("country %s should be flagged", tc.country)
		}
		if f.Severity != tc.want {
			t.Errorf("country %s: Severity = %v, want %v", tc.country, f.Severity, tc.want)
		}
	}

	findings, _ := engine.Evaluate(ctx, txn(1000, "US"))
	if findByRule(findings, domain.RuleSuspiciousCountry) != nil {
		t.Error("unlisted country should not be flagged")
	}
}

func TestEngine_LargeAmount(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	findings, err := engine.Evaluate(ctx, txn(50000, ""))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	f := findByRule(findings, domain.RuleLargeAmount)
	if f == nil {
		t.Fatal("amount at the large threshold should be flagged")
	}
	if f.Severity != domain.SeverityLow {
		t.Errorf("Severity = %v, want low", f.Severity)
	}

	findings, _ = engine.Evaluate(ctx, txn(150000, ""))
	f = findByRule(findings, domain.RuleLargeAmount)
	if f == nil {
		t.Fatal("very large amount should be flagged")
	}
	if f.Severity != domain.SeverityMedium {
		t.Errorf("Severity = %v, want medium", f.Severity)
	}
}

func TestEngine_MultipleRulesFireTogether(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Over both the daily limit and the very-large threshold, to a blocked
	// country.
	findings, err := engine.Evaluate(context.Background(), txn(500000, "IR"))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	for _, code := range []domain.RuleCode{domain.RuleDailyLimit, domain.RuleSuspiciousCountry, domain.RuleLargeAmount} {
		if findByRule(findings, code) == nil {
			t.Errorf("rule %s should have fired", code)
		}
	}
}

func TestEngine_InactiveRulesSkipped(t *testing.T) {
	repos := storemem.NewRepositories()
	ctx := context.Background()
	if err := repos.Rules.Create(ctx, &domain.ComplianceRule{
		ID:         "r1",
		Code:       domain.RuleLargeAmount,
		Name:       "Large amount",
		Parameters: map[string]float64{domain.ParamLargeAmount: 50000},
		IsActive:   false,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	engine := NewEngine(repos.Rules, repos.RiskCountries, storemem.NewStateStore(), testLogger())

	findings, err := engine.Evaluate(ctx, txn(500000, ""))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("inactive rule fired: %+v", findings)
	}
}
