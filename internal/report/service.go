package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/store"
)

// Service reads the three collections from their repositories and computes
// dashboard statistics and per-client rollups. Counters are recomputed on
// every call so they are always consistent with current store contents.
type Service struct {
	clients      store.ClientRepository
	transactions store.TransactionRepository
	alerts       store.AlertRepository
	logger       *slog.Logger
}

// NewService creates a new reporting service.
func NewService(
	clients store.ClientRepository,
	transactions store.TransactionRepository,
	alerts store.AlertRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		clients:      clients,
		transactions: transactions,
		alerts:       alerts,
		logger:       logger,
	}
}

// collections fetches all three collections unfiltered.
func (s *Service) collections(ctx context.Context) ([]*domain.Client, []*domain.Transaction, []*domain.Alert, error) {
	clients, err := s.clients.List(ctx, domain.ClientFilter{})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list clients: %w", err)
	}
	transactions, err := s.transactions.List(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	alerts, err := s.alerts.List(ctx, domain.AlertFilter{})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return clients, transactions, alerts, nil
}

// DashboardStats computes the dashboard counters as of now.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	clients, transactions, alerts, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStats(clients, transactions, alerts, time.Now().UTC()), nil
}

// ClientReports computes the per-client rollups. When clientID is non-empty
// the report set is restricted to that client; otherwise every client gets a
// report. Reports are ordered by total volume, highest first.
func (s *Service) ClientReports(ctx context.Context, clientID string) ([]*domain.ClientReport, error) {
	clients, transactions, alerts, err := s.collections(ctx)
	if err != nil {
		return nil, err
	}

	reports := BuildClientReports(clients, transactions, alerts)
	if clientID != "" {
		filtered := reports[:0]
		for _, r := range reports {
			if r.ClientID == clientID {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	SortByVolumeDesc(reports)
	return reports, nil
}
