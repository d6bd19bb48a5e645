package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"watchdog-go/internal/export"
	"watchdog-go/internal/report"
)

// ReportHandler handles HTTP requests for the dashboard and reporting
// endpoints.
type ReportHandler struct {
	service *report.Service
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service *report.Service, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// DashboardStats handles GET /v1/dashboard/stats
// Returns the dashboard counters, computed fresh on every call.
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(c.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", "error", err)
		return InternalError(c, "failed to compute dashboard stats")
	}

	return Success(c, stats)
}

// ListReports handles GET /v1/reports
// Returns the per-client rollups, ordered by volume descending. An optional
// client_id query restricts the set to one client.
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.service.ClientReports(c.Context(), c.Query("client_id"))
	if err != nil {
		h.logger.Error("failed to build client reports", "error", err)
		return InternalError(c, "failed to build client reports")
	}

	return Success(c, reportResponses(reports))
}

// ExportReports handles GET /v1/reports/export?format=csv|json
// Returns the report set as a downloadable file. The same client_id filter
// as ListReports applies, so exports cover the currently filtered subset.
func (h *ReportHandler) ExportReports(c *fiber.Ctx) error {
	format := c.Query("format", export.FormatCSV)

	contentType, err := export.ContentType(format)
	if err != nil {
		return BadRequest(c, "format must be csv or json")
	}

	reports, err := h.service.ClientReports(c.Context(), c.Query("client_id"))
	if err != nil {
		h.logger.Error("failed to build client reports", "error", err)
		return InternalError(c, "failed to build client reports")
	}

	var payload []byte
	switch format {
	case export.FormatCSV:
		payload = []byte(export.ReportsCSV(reports))
	case export.FormatJSON:
		payload, err = export.ReportsJSON(reports)
		if err != nil {
			h.logger.Error("failed to serialize reports", "error", err)
			return InternalError(c, "failed to serialize reports")
		}
	}

	filename := export.Filename(format, time.Now())
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
