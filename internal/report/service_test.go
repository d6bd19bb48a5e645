package report

import (
	"context"
	"log/slog"
	"os"
	"testing"

	storemem "watchdog-go/internal/store/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestService_DashboardStats(t *testing.T) {
	repos := storemem.NewRepositories()
	ctx := context.Background()
	if err := repos.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	service := NewService(repos.Clients, repos.Transactions, repos.Alerts, testLogger())

	stats, err := service.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}

	if stats.TotalClients != 8 {
		t.Errorf("TotalClients = %d, want 8", stats.TotalClients)
	}
	if stats.HighRiskClients != 2 {
		t.Errorf("HighRiskClients = %d, want 2", stats.HighRiskClients)
	}
	if stats.PendingKYC != 2 {
		t.Errorf("PendingKYC = %d, want 2", stats.PendingKYC)
	}
	// Seeded today: 150000 + 500000 + 9500 + 9200 + 9800.
	if stats.TransactionsToday != 5 {
		t.Errorf("TransactionsToday = %d, want 5", stats.TransactionsToday)
	}
	if stats.TransactionVolumeToday != 678500 {
		t.Errorf("TransactionVolumeToday = %v, want 678500", stats.TransactionVolumeToday)
	}
	if stats.ActiveAlerts != 5 {
		t.Errorf("ActiveAlerts = %d, want 5", stats.ActiveAlerts)
	}
	if stats.CriticalAlerts != 1 {
		t.Errorf("CriticalAlerts = %d, want 1", stats.CriticalAlerts)
	}
	if stats.ResolvedAlertsToday != 1 {
		t.Errorf("ResolvedAlertsToday = %d, want 1", stats.ResolvedAlertsToday)
	}
}

func TestService_ClientReports(t *testing.T) {
	repos := storemem.NewRepositories()
	ctx := context.Background()
	if err := repos.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	service := NewService(repos.Clients, repos.Transactions, repos.Alerts, testLogger())

	reports, err := service.ClientReports(ctx, "")
	if err != nil {
		t.Fatalf("ClientReports() error = %v", err)
	}
	if len(reports) != 8 {
		t.Fatalf("len(reports) = %d, want 8 (one per client)", len(reports))
	}

	// Ordered by volume descending.
	for i := 1; i < len(reports); i++ {
		if reports[i].TotalVolume > reports[i-1].TotalVolume {
			t.Errorf("reports not sorted by volume: %v before %v", reports[i-1].TotalVolume, reports[i].TotalVolume)
		}
	}

	// Offshore Holdings SA: 500000 + 9500 + 9200 + 9800.
	if reports[0].ClientName != "Offshore Holdings SA" {
		t.Errorf("top report = %q, want Offshore Holdings SA", reports[0].ClientName)
	}
	if reports[0].TotalVolume != 528500 {
		t.Errorf("top volume = %v, want 528500", reports[0].TotalVolume)
	}
}

func TestService_ClientReports_FilteredToOneClient(t *testing.T) {
	repos := storemem.NewRepositories()
	ctx := context.Background()
	if err := repos.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	service := NewService(repos.Clients, repos.Transactions, repos.Alerts, testLogger())

	all, _ := service.ClientReports(ctx, "")
	one, err := service.ClientReports(ctx, all[0].ClientID)
	if err != nil {
		t.Fatalf("ClientReports() error = %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("len(reports) = %d, want 1", len(one))
	}
	if one[0].ClientID != all[0].ClientID {
		t.Errorf("ClientID = %s, want %s", one[0].ClientID, all[0].ClientID)
	}
}
