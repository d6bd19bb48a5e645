package report

import (
	"testing"
	"time"

	"watchdog-go/internal/domain"
)

var now = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2026, 8, 28, hour, 0, 0, 0, time.UTC)
}

func yesterday() time.Time {
	return now.AddDate(0, 0, -1)
}

func testClients() []*domain.Client {
	return []*domain.Client{
		{ID: "c1", Name: "Empresa Alpha Ltda", RiskLevel: domain.RiskLow, KYCStatus: domain.KYCVerified},
		{ID: "c2", Name: "Global Trading Inc", RiskLevel: domain.RiskMedium, KYCStatus: domain.KYCVerified},
		{ID: "c3", Name: "Offshore Holdings SA", RiskLevel: domain.RiskHigh, KYCStatus: domain.KYCPending},
		{ID: "c4", Name: "Eastern Imports Ltd", RiskLevel: domain.RiskHigh, KYCStatus: domain.KYCRejected},
	}
}

func TestComputeStats_ClientCounters(t *testing.T) {
	stats := ComputeStats(testClients(), nil, nil, now)

	if stats.TotalClients != 4 {
		t.Errorf("TotalClients = %d, want 4", stats.TotalClients)
	}
	if stats.HighRiskClients != 2 {
		t.Errorf("HighRiskClients = %d, want 2", stats.HighRiskClients)
	}
	if stats.PendingKYC != 1 {
		t.Errorf("PendingKYC = %d, want 1", stats.PendingKYC)
	}
}

func TestComputeStats_TodayIsCalendarDayNotWindow(t *testing.T) {
	transactions := []*domain.Transaction{
		{ID: "t1", ClientID: "c1", Amount: domain.Money{Value: 9500, Currency: "USD"}, OccurredAt: at(0)},
		{ID: "t2", ClientID: "c1", Amount: domain.Money{Value: 9200, Currency: "USD"}, OccurredAt: at(14)},
		// 20h ago but on the previous calendar date: excluded.
		{ID: "t3", ClientID: "c1", Amount: domain.Money{Value: 99999, Currency: "USD"}, OccurredAt: now.Add(-20 * time.Hour)},
	}

	stats := ComputeStats(nil, transactions, nil, now)

	if stats.TransactionsToday != 2 {
		t.Errorf("TransactionsToday = %d, want 2", stats.TransactionsToday)
	}
	if stats.TransactionVolumeToday != 18700 {
		t.Errorf("TransactionVolumeToday = %v, want 18700", stats.TransactionVolumeToday)
	}
}

func TestComputeStats_AlertCounters(t *testing.T) {
	resolvedToday := at(11)
	resolvedYesterday := yesterday()
	alerts := []*domain.Alert{
		{ID: "a1", Status: domain.StatusNew, Severity: domain.SeverityCritical},
		{ID: "a2", Status: domain.StatusReview, Severity: domain.SeverityHigh},
		{ID: "a3", Status: domain.StatusResolved, Severity: domain.SeverityMedium, ResolvedAt: &resolvedToday},
		{ID: "a4", Status: domain.StatusResolved, Severity: domain.SeverityCritical, ResolvedAt: &resolvedYesterday},
	}

	stats := ComputeStats(nil, nil, alerts, now)

	if stats.ActiveAlerts != 2 {
		t.Errorf("ActiveAlerts = %d, want 2", stats.ActiveAlerts)
	}
	if stats.CriticalAlerts != 1 {
		t.Errorf("CriticalAlerts = %d, want 1 (resolved critical no longer counts)", stats.CriticalAlerts)
	}
	if stats.ResolvedAlertsToday != 1 {
		t.Errorf("ResolvedAlertsToday = %d, want 1", stats.ResolvedAlertsToday)
	}
}

func TestComputeStats_ResolvingCriticalRemovesItFromCount(t *testing.T) {
	alert := &domain.Alert{ID: "a1", Status: domain.StatusNew, Severity: domain.SeverityCritical}
	alerts := []*domain.Alert{alert}

	if got := ComputeStats(nil, nil, alerts, now).CriticalAlerts; got != 1 {
		t.Fatalf("CriticalAlerts = %d, want 1 while open", got)
	}

	alert.Transition(domain.StatusResolved, "", "analyst")

	if got := ComputeStats(nil, nil, alerts, now).CriticalAlerts; got != 0 {
		t.Errorf("CriticalAlerts = %d, want 0 after resolution", got)
	}
}

func TestBuildClientReports_OffshoreScenario(t *testing.T) {
	clients := testClients()
	transactions := []*domain.Transaction{
		{ID: "t1", ClientID: "c3", Amount: domain.Money{Value: 9500, Currency: "USD"}, OccurredAt: at(8)},
		{ID: "t2", ClientID: "c3", Amount: domain.Money{Value: 9200, Currency: "USD"}, OccurredAt: at(9)},
		{ID: "t3", ClientID: "c3", Amount: domain.Money{Value: 9800, Currency: "USD"}, OccurredAt: at(10)},
		{ID: "t4", ClientID: "c1", Amount: domain.Money{Value: 150000, Currency: "USD"}, OccurredAt: at(10)},
	}
	alerts := []*domain.Alert{
		{ID: "a1", ClientID: "c3", Status: domain.StatusNew},
		{ID: "a2", ClientID: "c3", Status: domain.StatusResolved},
	}

	reports := BuildClientReports(clients, transactions, alerts)

	var offshore *domain.ClientReport
	for _, r := range reports {
		if r.ClientName == "Offshore Holdings SA" {
			offshore = r
		}
	}
	if offshore == nil {
		t.Fatal("no report for Offshore Holdings SA")
	}
	if offshore.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, want 3", offshore.TotalTransactions)
	}
	if offshore.TotalVolume != 28500 {
		t.Errorf("TotalVolume = %v, want 28500", offshore.TotalVolume)
	}
	if offshore.AlertCount != 2 {
		t.Errorf("AlertCount = %d, want 2 (all statuses counted)", offshore.AlertCount)
	}
	if offshore.RiskLevel != domain.RiskHigh {
		t.Errorf("RiskLevel = %v, want high", offshore.RiskLevel)
	}
}

func TestBuildClientReports_VolumeConsistency(t *testing.T) {
	clients := testClients()
	transactions := []*domain.Transaction{
		{ID: "t1", ClientID: "c1", Amount: domain.Money{Value: 150000, Currency: "USD"}},
		{ID: "t2", ClientID: "c2", Amount: domain.Money{Value: 200000, Currency: "USD"}},
		{ID: "t3", ClientID: "c3", Amount: domain.Money{Value: 9500, Currency: "USD"}},
		{ID: "t4", ClientID: "c3", Amount: domain.Money{Value: 45000, Currency: "BRL"}},
	}

	reports := BuildClientReports(clients, transactions, nil)

	var reportSum, txnSum float64
	for _, r := range reports {
		reportSum += r.TotalVolume
	}
	for _, txn := range transactions {
		txnSum += txn.Amount.Value
	}
	if reportSum != txnSum {
		t.Errorf("sum of report volumes = %v, want %v (total of all transactions)", reportSum, txnSum)
	}
}

func TestSortByVolumeDesc(t *testing.T) {
	reports := []*domain.ClientReport{
		{ClientID: "c1", TotalVolume: 100},
		{ClientID: "c2", TotalVolume: 500},
		{ClientID: "c3", TotalVolume: 250},
	}

	SortByVolumeDesc(reports)

	want := []string{"c2", "c3", "c1"}
	for i, r := range reports {
		if r.ClientID != want[i] {
			t.Errorf("reports[%d] = %s, want %s", i, r.ClientID, want[i])
		}
	}
}
