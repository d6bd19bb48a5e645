package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/metrics"
	"watchdog-go/internal/notification"
	"watchdog-go/internal/store"
)

// AlertHandler handles HTTP requests for alert operations. Alerts are raised
// by screening; analysts move them through the lifecycle here.
type AlertHandler struct {
	repo     store.AlertRepository
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(repo store.AlertRepository, notifier notification.Notifier, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// List handles GET /v1/alerts
// Returns alerts matching the query filters.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	filter := domain.AlertFilter{
		Search:   c.Query("search"),
		ClientID: c.Query("client_id"),
	}

	status, ok := parseAlertStatusParam(c.Query("status"))
	if !ok {
		return BadRequest(c, "invalid status filter")
	}
	filter.Status = status

	severity, ok := parseAlertSeverityParam(c.Query("severity"))
	if !ok {
		return BadRequest(c, "invalid severity filter")
	}
	filter.Severity = severity

	alerts, err := h.repo.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list alerts", "error", err)
		return InternalError(c, "failed to list alerts")
	}

	return Success(c, alertResponses(alerts))
}

// GetByID handles GET /v1/alerts/:id
func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	alert, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return NotFound(c, "alert not found")
		}
		h.logger.Error("failed to get alert", "alert_id", id, "error", err)
		return InternalError(c, "failed to get alert")
	}

	return Success(c, alertResponse(alert))
}

// UpdateStatus handles PATCH /v1/alerts/:id/status
// Moves an alert through its lifecycle. Disallowed transitions return 409.
func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body UpdateAlertStatusBody
	if err := c.BodyParser(&body); err != nil {
		return BadRequest(c, "invalid request body")
	}

	to, ok := domain.AlertStatusFromCode(body.Status)
	if !ok {
		return ValidationError(c, "unknown status code")
	}

	alert, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return NotFound(c, "alert not found")
		}
		h.logger.Error("failed to get alert", "alert_id", id, "error", err)
		return InternalError(c, "failed to get alert")
	}

	if !alert.Transition(to, body.Notes, body.ResolvedBy) {
		return Conflict(c, "transition not allowed from status "+string(alert.Status))
	}

	if err := h.repo.Update(c.Context(), alert); err != nil {
		h.logger.Error("failed to update alert", "alert_id", id, "error", err)
		return InternalError(c, "failed to update alert")
	}

	if alert.IsResolved() {
		metrics.AlertsResolvedTotal.Inc()
		h.notifier.NotifyAlertResolved(c.Context(), alert)
	}

	h.logger.Info("alert status updated",
		"alert_id", alert.ID,
		"status", alert.Status,
		"resolved_by", alert.ResolvedBy,
	)
	return Success(c, alertResponse(alert))
}

// UpdateNotes handles PATCH /v1/alerts/:id/notes
// Updates the resolution notes on an open alert. Notes are frozen once the
// alert reaches a terminal state.
func (h *AlertHandler) UpdateNotes(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return BadRequest(c, "invalid request body")
	}

	alert, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return NotFound(c, "alert not found")
		}
		h.logger.Error("failed to get alert", "alert_id", id, "error", err)
		return InternalError(c, "failed to get alert")
	}

	if !alert.SetNotes(body.Notes) {
		return Conflict(c, "notes are frozen on a resolved alert")
	}

	if err := h.repo.Update(c.Context(), alert); err != nil {
		h.logger.Error("failed to update alert", "alert_id", id, "error", err)
		return InternalError(c, "failed to update alert")
	}

	return Success(c, alertResponse(alert))
}
