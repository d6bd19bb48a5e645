package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"watchdog-go/internal/config"
)

// Server represents the HTTP server with all configured routes and middleware.
type Server struct {
	app    *fiber.App
	config *config.ServerConfig
	logger *slog.Logger

	// Handlers
	clientHandler      *ClientHandler
	transactionHandler *TransactionHandler
	alertHandler       *AlertHandler
	reportHandler      *ReportHandler
}

// ServerDeps contains all dependencies required to create a new Server.
type ServerDeps struct {
	Config             *config.ServerConfig
	Logger             *slog.Logger
	ClientHandler      *ClientHandler
	TransactionHandler *TransactionHandler
	AlertHandler       *AlertHandler
	ReportHandler      *ReportHandler
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(deps ServerDeps) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		StrictRouting:         true,
		CaseSensitive:         true,
		ReadTimeout:           deps.Config.ReadTimeout,
		WriteTimeout:          deps.Config.WriteTimeout,
		IdleTimeout:           deps.Config.IdleTimeout,
		ErrorHandler:          customErrorHandler,
	})

	s := &Server{
		app:                app,
		config:             deps.Config,
		logger:             deps.Logger,
		clientHandler:      deps.ClientHandler,
		transactionHandler: deps.TransactionHandler,
		alertHandler:       deps.AlertHandler,
		reportHandler:      deps.ReportHandler,
	}

	s.registerMiddleware()
	s.registerRoutes()

	return s
}

// registerMiddleware sets up all middleware for the server.
func (s *Server) registerMiddleware() {
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	s.app.Use(requestid.New())

	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
}

// registerRoutes sets up all API routes.
func (s *Server) registerRoutes() {
	// Health check endpoint (outside versioned API)
	s.app.Get("/healthz", s.healthCheck)

	// Prometheus metrics endpoint
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")

	// Clients
	v1.Post("/clients", s.clientHandler.Create)
	v1.Get("/clients", s.clientHandler.List)
	v1.Get("/clients/:id", s.clientHandler.GetByID)
	v1.Patch("/clients/:id", s.clientHandler.Update)

	// Transactions (immutable: no update or delete)
	v1.Post("/transactions", s.transactionHandler.Create)
	v1.Get("/transactions", s.transactionHandler.List)
	v1.Get("/transactions/:id", s.transactionHandler.GetByID)

	// Alerts
	v1.Get("/alerts", s.alertHandler.List)
	v1.Get("/alerts/:id", s.alertHandler.GetByID)
	v1.Patch("/alerts/:id/status", s.alertHandler.UpdateStatus)
	v1.Patch("/alerts/:id/notes", s.alertHandler.UpdateNotes)

	// Dashboard and reports
	v1.Get("/dashboard/stats", s.reportHandler.DashboardStats)
	v1.Get("/reports", s.reportHandler.ListReports)
	v1.Get("/reports/export", s.reportHandler.ExportReports)
}

// healthCheck returns the health status of the service.
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return Success(c, map[string]string{
		"status": "healthy",
	})
}

// App exposes the underlying fiber app. Used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	addr := s.config.Address()
	s.logger.Info("starting HTTP server", "address", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler handles errors returned from handlers.
func customErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return Error(c, e.Code, ErrCodeInternalError, e.Message)
	}

	return InternalError(c, fmt.Sprintf("unexpected error: %v", err))
}
