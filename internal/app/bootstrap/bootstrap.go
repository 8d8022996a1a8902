package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"strings"

	accountservice "launchpad/contexts/identity-access/account-service"
	accountcrypto "launchpad/contexts/identity-access/account-service/adapters/crypto"
	accountpostgres "launchpad/contexts/identity-access/account-service/adapters/postgres"
	startupservice "launchpad/contexts/startup-marketplace/startup-service"
	startuppostgres "launchpad/contexts/startup-marketplace/startup-service/adapters/postgres"
	"launchpad/internal/app/accountdirectory"
	"launchpad/internal/platform/config"
	"launchpad/internal/platform/db"
	"launchpad/internal/platform/httpserver"
	"launchpad/internal/platform/session"

	"golang.org/x/crypto/bcrypt"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("service", cfg.ServiceName, "process", "api")

	tokens, err := session.NewTokenService(session.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Issuer:     cfg.ServiceName,
	})
	if err != nil {
		return nil, err
	}

	var (
		accounts accountservice.Module
		startups startupservice.Module
		pg       *db.Postgres
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("POSTGRES_DSN not set, using in-memory stores",
			"event", "bootstrap_memory_stores",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		accounts = accountservice.NewInMemoryModule(logger)
		startups = startupservice.NewInMemoryModule(accountdirectory.New(accounts.Lookup), logger)
	} else {
		pg, err = db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		userRepo := accountpostgres.NewRepository(pg.DB, logger)
		startupRepo := startuppostgres.NewRepository(pg.DB, logger)
		if cfg.AutoMigrate {
			if err := userRepo.Migrate(ctx); err != nil {
				_ = pg.Close()
				return nil, err
			}
			if err := startupRepo.Migrate(ctx); err != nil {
				_ = pg.Close()
				return nil, err
			}
		}

		accounts = accountservice.NewModule(accountservice.Dependencies{
			Users:        userRepo,
			Hasher:       accountcrypto.BcryptHasher{Cost: bcrypt.DefaultCost},
			Clock:        accountpostgres.SystemClock{},
			IDGenerator:  accountpostgres.UUIDGenerator{},
			StoreTimeout: cfg.StoreTimeout,
			Logger:       logger,
		})
		startups = startupservice.NewModule(startupservice.Dependencies{
			Startups:     startupRepo,
			Feedback:     startupRepo,
			Users:        accountdirectory.New(accounts.Lookup),
			Clock:        startuppostgres.SystemClock{},
			IDGenerator:  startuppostgres.UUIDGenerator{},
			StoreTimeout: cfg.StoreTimeout,
			Logger:       logger,
		})
	}

	server := httpserver.New(accounts, startups, tokens, logger, normalizeAddr(cfg.HTTPPort), cfg.Production())
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start(ctx)
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
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
