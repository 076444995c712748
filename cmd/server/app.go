package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/quillstack/quill-api/internal/config"
	"github.com/quillstack/quill-api/internal/platform/logger"
	"github.com/quillstack/quill-api/internal/platform/postgres"
	"github.com/quillstack/quill-api/internal/service/auth"
	"github.com/quillstack/quill-api/internal/store"
)

// application holds the assembled dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	postStore  store.PostStore
	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
}

// newApplication loads configuration and wires up all application
// components: logger, database, migrations, stores, and services.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     appLogger,
		db:         db,
		userStore:  postgres.NewTxUserStore(db, appLogger),
		postStore:  postgres.NewPostgresPostStore(db, appLogger),
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(0),
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run(ctx context.Context) error {
	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
