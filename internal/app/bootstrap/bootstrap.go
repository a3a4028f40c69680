package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validatorregistry "chainfreight/contexts/identity-access/validator-registry"
	registrypostgres "chainfreight/contexts/identity-access/validator-registry/adapters/postgres"
	trackingengine "chainfreight/contexts/supply-chain/tracking-engine"
	eventsadapter "chainfreight/contexts/supply-chain/tracking-engine/adapters/events"
	trackingpostgres "chainfreight/contexts/supply-chain/tracking-engine/adapters/postgres"
	workerapp "chainfreight/contexts/supply-chain/tracking-engine/application/workers"
	"chainfreight/internal/platform/config"
	"chainfreight/internal/platform/db"
	"chainfreight/internal/platform/httpserver"
	"chainfreight/internal/platform/ledger"
	"chainfreight/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	clock := ledger.NewClock(cfg.InitialLedgerHeight)

	var (
		pg             *db.Postgres
		registryModule validatorregistry.Module
		trackingModule trackingengine.Module
	)

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		registryModule = validatorregistry.NewModule(validatorregistry.Dependencies{
			Registry: registrypostgres.NewRepository(pg.DB, logger),
			Clock:    clock,
			Owner:    cfg.LedgerOwnerID,
			Logger:   logger,
		})
		trackingModule = trackingengine.NewModule(trackingengine.Dependencies{
			Repository:  trackingpostgres.NewRepository(pg.DB, logger),
			Authority:   registryModule.Service,
			Clock:       clock,
			IDGenerator: trackingpostgres.UUIDGenerator{},
			Logger:      logger,
		})
	} else {
		// No DSN means local mode backed by the in-memory stores.
		registryModule = validatorregistry.NewInMemoryModule(cfg.LedgerOwnerID, clock, logger)
		trackingModule = trackingengine.NewInMemoryModule(registryModule.Service, clock, logger)
	}

	// The ledger owner always acts as an authorized validator.
	if _, err := registryModule.Service.Authorize(context.Background(), cfg.LedgerOwnerID, cfg.LedgerOwnerID); err != nil {
		return nil, err
	}

	server := httpserver.New(trackingModule, registryModule, clock, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if !cfg.EnableOutboxRelay {
		return nil, errors.New("ENABLE_OUTBOX_RELAY is off; the worker has nothing to run")
	}
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	clock := ledger.NewClock(cfg.InitialLedgerHeight)
	repo := trackingpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: eventsadapter.NewPublisher(kafka, "tracking.events", logger),
			Clock:     clock,
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
