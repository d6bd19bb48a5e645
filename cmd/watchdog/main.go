// Package main is the entry point for the Watchdog compliance monitoring
// service. It initializes all components and starts the HTTP server and the
// screening processor.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"watchdog-go/internal/api"
	"watchdog-go/internal/banner"
	"watchdog-go/internal/config"
	"watchdog-go/internal/ingest"
	"watchdog-go/internal/notification"
	"watchdog-go/internal/queue"
	kafkaqueue "watchdog-go/internal/queue/kafka"
	memoryqueue "watchdog-go/internal/queue/memory"
	"watchdog-go/internal/report"
	"watchdog-go/internal/screening"
	"watchdog-go/internal/store"
	memorystor "watchdog-go/internal/store/memory"
	postgresstor "watchdog-go/internal/store/postgres"
	redisstor "watchdog-go/internal/store/redis"
)

func main() {
	banner.Print()

	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err, "path", *configPath)
		os.Exit(1)
	}

	logger := initLogger(&cfg.Logger)

	logger.Info("configuration loaded",
		"path", *configPath,
		"storage_mode", cfg.Storage.Mode,
	)

	deps, cleanup, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create context that listens for shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start the screening processor in the background
	go func() {
		if err := deps.processor.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error("screening processor error", "error", err)
			cancel()
		}
	}()

	// Start HTTP server
	go func() {
		if err := deps.server.Start(); err != nil {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	logger.Info("watchdog started",
		"address", cfg.Server.Address(),
		"storage_mode", cfg.Storage.Mode,
	)

	// Wait for shutdown signal
	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer shutdownCancel()

	if err := deps.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := deps.processor.Stop(); err != nil {
		logger.Error("processor shutdown error", "error", err)
	}

	logger.Info("watchdog stopped")
}

// dependencies holds all initialized service dependencies.
type dependencies struct {
	server    *api.Server
	processor *screening.Processor
}

// initDependencies creates and wires all service dependencies based on config.
// Returns the dependencies and a cleanup function.
func initDependencies(cfg *config.Config, logger *slog.Logger) (*dependencies, func(), error) {
	var (
		clientRepo      store.ClientRepository
		transactionRepo store.TransactionRepository
		alertRepo       store.AlertRepository
		ruleRepo        store.RuleRepository
		countryRepo     store.RiskCountryRepository
		stateStore      store.StateStore
		producer        queue.Producer
		consumer        queue.Consumer
		cleanupFuncs    []func()
	)

	if cfg.Storage.UseMemory() {
		logger.Info("initializing in-memory storage")

		repos := memorystor.NewRepositories()
		clientRepo = repos.Clients
		transactionRepo = repos.Transactions
		alertRepo = repos.Alerts
		ruleRepo = repos.Rules
		countryRepo = repos.RiskCountries

		// Screening needs the rules and country list even without the demo
		// dataset.
		ctx := context.Background()
		if cfg.Storage.Seed {
			if err := repos.Seed(ctx); err != nil {
				return nil, nil, err
			}
			logger.Info("demo dataset loaded")
		} else if err := repos.SeedReferenceData(ctx); err != nil {
			return nil, nil, err
		}

		memStateStore := memorystor.NewStateStore()
		stateStore = memStateStore
		cleanupFuncs = append(cleanupFuncs, func() { _ = memStateStore.Close() })

		memQueue := memoryqueue.NewQueue(10000)
		producer = memQueue
		consumer = memQueue
		cleanupFuncs = append(cleanupFuncs, func() { _ = memQueue.Close() })
	} else {
		logger.Info("initializing production storage (Kafka, Redis, PostgreSQL)")

		ctx := context.Background()
		db, err := postgresstor.NewDB(ctx, &cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		cleanupFuncs = append(cleanupFuncs, db.Close)

		if err := db.RunMigrations(ctx); err != nil {
			return nil, nil, err
		}
		logger.Info("database migrations completed")

		clientRepo = postgresstor.NewClientRepository(db)
		transactionRepo = postgresstor.NewTransactionRepository(db)
		alertRepo = postgresstor.NewAlertRepository(db)
		ruleRepo = postgresstor.NewRuleRepository(db)
		countryRepo = postgresstor.NewRiskCountryRepository(db)

		redisStore, err := redisstor.NewStateStore(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		stateStore = redisStore
		cleanupFuncs = append(cleanupFuncs, func() { _ = redisStore.Close() })

		kafkaProducer := kafkaqueue.NewProducer(&cfg.Kafka)
		producer = kafkaProducer
		cleanupFuncs = append(cleanupFuncs, func() { _ = kafkaProducer.Close() })

		kafkaConsumer := kafkaqueue.NewConsumer(&cfg.Kafka, logger)
		consumer = kafkaConsumer
		cleanupFuncs = append(cleanupFuncs, func() { _ = kafkaConsumer.Close() })
	}

	// Notifications are stubbed until a real channel is chosen
	notifier := notification.NewStubNotifier(logger)

	ingestService := ingest.NewService(producer, clientRepo, transactionRepo, logger)

	engine := screening.NewEngine(ruleRepo, countryRepo, stateStore, logger)
	processor := screening.NewProcessor(consumer, engine, alertRepo, notifier, logger)

	reportService := report.NewService(clientRepo, transactionRepo, alertRepo, logger)

	server := api.NewServer(api.ServerDeps{
		Config:             &cfg.Server,
		Logger:             logger,
		ClientHandler:      api.NewClientHandler(clientRepo, logger),
		TransactionHandler: api.NewTransactionHandler(ingestService, transactionRepo, logger),
		AlertHandler:       api.NewAlertHandler(alertRepo, notifier, logger),
		ReportHandler:      api.NewReportHandler(reportService, logger),
	})

	cleanup := func() {
		for i := len(cleanupFuncs) - 1; i >= 0; i-- {
			cleanupFuncs[i]()
		}
	}

	return &dependencies{
		server:    server,
		processor: processor,
	}, cleanup, nil
}

// initLogger creates and configures the application logger.
func initLogger(cfg *config.LoggerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
