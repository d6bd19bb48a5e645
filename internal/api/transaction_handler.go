package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"watchdog-go/internal/domain"
	"watchdog-go/internal/ingest"
	"watchdog-go/internal/store"
)

// TransactionHandler handles HTTP requests for transaction operations.
// Writes go through the ingest service so screening sees every transaction;
// reads come straight from the repository.
type TransactionHandler struct {
	service *ingest.Service
	repo    store.TransactionRepository
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service *ingest.Service, repo store.TransactionRepository, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		repo:    repo,
		logger:  logger,
	}
}

// Create handles POST /v1/transactions
// Records a transaction and queues it for screening. The transaction is
// persisted synchronously; alerts appear asynchronously.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var body CreateTransactionBody
	if err := c.BodyParser(&body); err != nil {
		return BadRequest(c, "invalid request body")
	}

	txn, err := h.service.RecordTransaction(c.Context(), body.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrClientNotFound):
			return NotFound(c, "client not found")
		case errors.Is(err, ingest.ErrPublishFailed):
			// Stored but not queued for screening.
			h.logger.Error("transaction stored but not queued", "transaction_id", txn.ID)
			return Created(c, transactionResponse(txn))
		default:
			if txn == nil && isValidationError(err) {
				return ValidationError(c, err.Error())
			}
			h.logger.Error("failed to record transaction", "error", err)
			return InternalError(c, "failed to record transaction")
		}
	}

	return Created(c, transactionResponse(txn))
}

// isValidationError reports whether the error is one of the request
// validation sentinels.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyClientID,
		domain.ErrInvalidType,
		domain.ErrInvalidAmount,
		domain.ErrEmptyCurrency,
		domain.ErrEmptyCounterparty,
		domain.ErrInvalidCountryCode,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// List handles GET /v1/transactions
// Returns transactions matching the query filters.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := domain.TransactionFilter{
		Search:   c.Query("search"),
		ClientID: c.Query("client_id"),
	}

	typ, ok := parseTransactionTypeParam(c.Query("type"))
	if !ok {
		return BadRequest(c, "invalid type filter")
	}
	filter.Type = typ

	txns, err := h.repo.List(c.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list transactions", "error", err)
		return InternalError(c, "failed to list transactions")
	}

	return Success(c, transactionResponses(txns))
}

// GetByID handles GET /v1/transactions/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	txn, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NotFound(c, "transaction not found")
		}
		h.logger.Error("failed to get transaction", "transaction_id", id, "error", err)
		return InternalError(c, "failed to get transaction")
	}

	return Success(c, transactionResponse(txn))
}
