package screening

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/metrics"
	"watchdog-go/internal/notification"
	"watchdog-go/internal/queue"
	"watchdog-go/internal/store"
)

// Processor consumes transaction events from the queue, runs them through
// the rule engine, and persists an alert per violation.
type Processor struct {
	consumer queue.Consumer
	engine   *Engine
	alerts   store.AlertRepository
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewProcessor creates a screening processor.
func NewProcessor(
	consumer queue.Consumer,
	engine *Engine,
	alerts store.AlertRepository,
	notifier notification.Notifier,
	logger *slog.Logger,
) *Processor {
	return &Processor{
		consumer: consumer,
		engine:   engine,
		alerts:   alerts,
		notifier: notifier,
		logger:   logger,
	}
}

// Start begins consuming transaction events. This blocks until the context
// is canceled.
func (p *Processor) Start(ctx context.Context) error {
	p.logger.Info("starting screening processor")
	return p.consumer.Start(ctx, p.handleMessage)
}

// handleMessage screens one transaction event.
func (p *Processor) handleMessage(ctx context.Context, msg *queue.Message) error {
	var event domain.TransactionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		p.logger.Error("failed to deserialize transaction event", "error", err)
		// Malformed messages are dropped rather than replayed forever.
		return nil
	}
	txn := &event.Transaction

	p.logger.Debug("screening transaction",
		"transaction_id", txn.ID,
		"client_id", txn.ClientID,
		"amount", txn.Amount.Value,
	)

	screenStart := time.Now()
	findings, err := p.engine.Evaluate(ctx, txn)
	if err != nil {
		metrics.TransactionsScreenedTotal.WithLabelValues("error").Inc()
		p.logger.Error("failed to screen transaction", "error", err, "transaction_id", txn.ID)
		return err
	}
	metrics.ScreeningLatency.Observe(time.Since(screenStart).Seconds())

	if len(findings) == 0 {
		metrics.TransactionsScreenedTotal.WithLabelValues("clean").Inc()
		return nil
	}
	metrics.TransactionsScreenedTotal.WithLabelValues("flagged").Inc()

	for _, f := range findings {
		alert := domain.NewAlert(txn, f.RuleCode, f.Severity, f.Description)
		if err := p.alerts.Create(ctx, alert); err != nil {
			p.logger.Error("failed to persist alert", "error", err, "rule", f.RuleCode)
			return err
		}

		metrics.AlertsCreatedTotal.WithLabelValues(string(f.RuleCode), string(f.Severity)).Inc()
		if !event.ReceivedAt.IsZero() {
			metrics.AlertCreationLatency.Observe(time.Since(event.ReceivedAt).Seconds())
		}

		p.logger.Info("alert created",
			"alert_id", alert.ID,
			"client", alert.ClientName,
			"rule", f.RuleCode,
			"severity", f.Severity,
		)

		p.notifier.NotifyAlertCreated(ctx, alert)
	}

	return nil
}

// Stop gracefully stops the processor.
func (p *Processor) Stop() error {
	p.logger.Info("stopping screening processor")
	return p.consumer.Close()
}
