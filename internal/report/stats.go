// Package report implements the aggregation and reporting engine: dashboard
// counters, per-client rollups, and the filtered views they are computed
// over. Everything here is a pure function of the three collections; the
// Service wraps the functions with repository reads so callers always see
// numbers consistent with the current store contents. Nothing is cached.
package report

import (
	"sort"
	"time"

	"watchdog-go/internal/domain"
)

// sameCalendarDay reports whether two instants fall on the same calendar
// date in UTC. Calendar date, not a rolling 24h window.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ComputeStats derives the dashboard counters from the three collections.
// Volume sums add amounts in their native currencies with no conversion;
// mixing currencies in a sum is accepted, documented behavior.
func ComputeStats(clients []*domain.Client, transactions []*domain.Transaction, alerts []*domain.Alert, now time.Time) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		TotalClients: len(clients),
	}

	for _, c := range clients {
		if c.IsHighRisk() {
			stats.HighRiskClients++
		}
		if c.KYCStatus == domain.KYCPending {
			stats.PendingKYC++
		}
	}

	for _, t := range transactions {
		if sameCalendarDay(t.OccurredAt, now) {
			stats.TransactionsToday++
			stats.TransactionVolumeToday += t.Amount.Value
		}
	}

	for _, a := range alerts {
		if a.IsOpen() {
			stats.ActiveAlerts++
			if a.Severity == domain.SeverityCritical {
				stats.CriticalAlerts++
			}
		}
		if a.IsResolved() && a.ResolvedAt != nil && sameCalendarDay(*a.ResolvedAt, now) {
			stats.ResolvedAlertsToday++
		}
	}

	return stats
}

// BuildClientReports derives one rollup per client, in client order.
// TotalVolume carries the same no-conversion caveat as the dashboard volume.
// AlertCount counts alerts of every status, not just open ones. RiskLevel is
// the client's level at computation time.
func BuildClientReports(clients []*domain.Client, transactions []*domain.Transaction, alerts []*domain.Alert) []*domain.ClientReport {
	txnCount := make(map[string]int, len(clients))
	volume := make(map[string]float64, len(clients))
	for _, t := range transactions {
		txnCount[t.ClientID]++
		volume[t.ClientID] += t.Amount.Value
	}

	alertCount := make(map[string]int, len(clients))
	for _, a := range alerts {
		alertCount[a.ClientID]++
	}

	reports := make([]*domain.ClientReport, 0, len(clients))
	for _, c := range clients {
		reports = append(reports, &domain.ClientReport{
			ClientID:          c.ID,
			ClientName:        c.Name,
			TotalTransactions: txnCount[c.ID],
			TotalVolume:       volume[c.ID],
			AlertCount:        alertCount[c.ID],
			RiskLevel:         c.RiskLevel,
		})
	}
	return reports
}

// SortByVolumeDesc orders reports by total volume, highest first. This is a
// presentation ordering layered on top of the rollups, applied in place.
func SortByVolumeDesc(reports []*domain.ClientReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TotalVolume > reports[j].TotalVolume
	})
}
