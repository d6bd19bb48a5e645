package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/store"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	repo   store.ClientRepository
	logger *slog.Logger
}

// NewClientHandler creates a new client handler.
func NewClientHandler(repo store.ClientRepository, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		repo:   repo,
		logger: logger,
	}
}

// Create handles POST /v1/clients
// Registers a new client.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var body CreateClientBody
	if err := c.BodyParser(&body); err != nil {
		return BadRequest(c, "invalid request body")
	}

	req := body.toDomain()
	if err := req.Validate(); err != nil {
		return ValidationError(c, err.Error())
	}

	client := domain.NewClient(req)
	if err := h.repo.Create(c.Context(), client); err != nil {
		h.logger.Error("failed to create client", "error", err)
		return InternalError(c, "failed to create client")
	}

	h.logger.Info("client created", "client_id", client.ID, "name", client.Name)
	return Created(c, clientResponse(client))
}

// List handles GET /v1/clients
// Returns clients matching the query filters.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	filter := domain.ClientFilter{
		Search: c.Query("search"),
	}

	risk, ok := parseRiskLevelParam(c.Query("risk_level"))
	if !ok {
		return BadRequest(c, "invalid risk_level filter")
	}
	filter.RiskLevel = risk

	kyc, ok := parseKYCStatusParam(c.Query("kyc_status"))
	if !ok {
		return BadRequest(c, "invalid kyc_status filter")
	}
	filter.KYCStatus = kyc

	clients, err := h.repo.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list clients", "error", err)
		return InternalError(c, "failed to list clients")
	}

	return Success(c, clientResponses(clients))
}

// GetByID handles GET /v1/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	client, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return NotFound(c, "client not found")
		}
		h.logger.Error("failed to get client", "client_id", id, "error", err)
		return InternalError(c, "failed to get client")
	}

	return Success(c, clientResponse(client))
}

// Update handles PATCH /v1/clients/:id
// Changes a client's risk level or KYC status.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var body UpdateClientBody
	if err := c.BodyParser(&body); err != nil {
		return BadRequest(c, "invalid request body")
	}

	req, ok := body.toDomain()
	if !ok {
		return ValidationError(c, "unknown risk_level or kyc_status code")
	}

	client, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return NotFound(c, "client not found")
		}
		h.logger.Error("failed to get client", "client_id", id, "error", err)
		return InternalError(c, "failed to get client")
	}

	client.Apply(req)
	if err := h.repo.Update(c.Context(), client); err != nil {
		h.logger.Error("failed to update client", "client_id", id, "error", err)
		return InternalError(c, "failed to update client")
	}

	return Success(c, clientResponse(client))
}
