// Package notification dispatches alert notifications to the compliance
// team. The current implementation logs the payload instead of delivering it;
// webhook delivery with retries is the planned follow-up.
package notification

import (
	"context"
	"log/slog"
	"time"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/metrics"
)

// Payload is the document a webhook delivery would carry.
type Payload struct {
	AlertID         string    `json:"alert_id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	TransactionID   string    `json:"transaction_id"`
	RuleCode        string    `json:"rule_code"`
	RuleDescription string    `json:"rule_description"`
	Severity        string    `json:"severity"`
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
}

// Notifier sends alert lifecycle notifications.
type Notifier interface {
	// NotifyAlertCreated fires when screening raises a new alert.
	NotifyAlertCreated(ctx context.Context, alert *domain.Alert)

	// NotifyAlertResolved fires when an analyst resolves an alert.
	NotifyAlertResolved(ctx context.Context, alert *domain.Alert)
}

// StubNotifier logs notifications instead of delivering them.
type StubNotifier struct {
	logger *slog.Logger
}

// NewStubNotifier creates a new stub notifier.
func NewStubNotifier(logger *slog.Logger) *StubNotifier {
	return &StubNotifier{
		logger: logger,
	}
}

// NotifyAlertCreated logs a created-alert notification.
func (n *StubNotifier) NotifyAlertCreated(ctx context.Context, alert *domain.Alert) {
	payload := buildPayload(alert)

	n.logger.Info("STUB: would send alert created notification",
		"alertID", payload.AlertID,
		"client", payload.ClientName,
		"rule", payload.RuleCode,
		"severity", payload.Severity,
	)

	metrics.NotificationsSentTotal.WithLabelValues("created", "success").Inc()
}

// NotifyAlertResolved logs a resolved-alert notification.
func (n *StubNotifier) NotifyAlertResolved(ctx context.Context, alert *domain.Alert) {
	payload := buildPayload(alert)

	n.logger.Info("STUB: would send alert resolved notification",
		"alertID", payload.AlertID,
		"client", payload.ClientName,
		"resolvedBy", alert.ResolvedBy,
	)

	metrics.NotificationsSentTotal.WithLabelValues("resolved", "success").Inc()
}

// buildPayload creates a notification payload from an alert.
func buildPayload(alert *domain.Alert) *Payload {
	return &Payload{
		AlertID:         alert.ID,
		ClientID:        alert.ClientID,
		ClientName:      alert.ClientName,
		TransactionID:   alert.TransactionID,
		RuleCode:        string(alert.RuleCode),
		RuleDescription: alert.RuleDescription,
		Severity:        string(alert.Severity),
		Status:          string(alert.Status),
		Timestamp:       time.Now().UTC(),
	}
}
