// Package ingest provides the transaction ingestion service.
// It validates incoming transactions, resolves the owning client, persists
// the record, and publishes an event to the queue for asynchronous screening.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/metrics"
	"watchdog-go/internal/queue"
	"watchdog-go/internal/store"
)

// Errors returned by the ingest service.
var (
	ErrClientNotFound = errors.New("client not found")
	ErrPublishFailed  = errors.New("failed to publish transaction event to queue")
)

// Service handles transaction ingestion.
type Service struct {
	producer     queue.Producer
	clients      store.ClientRepository
	transactions store.TransactionRepository
	logger       *slog.Logger
}

// NewService creates a new ingest service.
func NewService(
	producer queue.Producer,
	clients store.ClientRepository,
	transactions store.TransactionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		producer:     producer,
		clients:      clients,
		transactions: transactions,
		logger:       logger,
	}
}

// RecordTransaction validates and persists a transaction, then publishes a
// TransactionEvent keyed by client ID so screening processes each client's
// activity in order. The transaction is stored even if publishing fails;
// screening is best-effort on top of the ledger.
func (s *Service) RecordTransaction(ctx context.Context, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	ingestStart := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	metrics.TransactionsReceivedTotal.WithLabelValues(string(req.Type)).Inc()

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			s.logger.Warn("transaction for unknown client", "client_id", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("failed to fetch client", "error", err)
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	txn := domain.NewTransaction(req, client)
	if err := s.transactions.Create(ctx, txn); err != nil {
		s.logger.Error("failed to store transaction", "error", err)
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	event := &domain.TransactionEvent{
		Transaction: *txn,
		ReceivedAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction event: %w", err)
	}

	msg := &queue.Message{
		Key:   []byte(txn.ClientID),
		Value: payload,
		Headers: map[string]string{
			"transaction_id": txn.ID,
			"type":           string(txn.Type),
		},
	}

	publishStart := time.Now()
	if err := s.producer.Publish(ctx, msg); err != nil {
		s.logger.Error("failed to publish transaction event", "error", err, "transaction_id", txn.ID)
		return txn, ErrPublishFailed
	}
	metrics.QueuePublishLatency.Observe(time.Since(publishStart).Seconds())

	metrics.TransactionsPublishedTotal.Inc()
	metrics.TransactionIngestLatency.Observe(time.Since(ingestStart).Seconds())

	s.logger.Debug("transaction event published",
		"transaction_id", txn.ID,
		"client_id", txn.ClientID,
		"amount", txn.Amount.Value,
	)

	return txn, nil
}
