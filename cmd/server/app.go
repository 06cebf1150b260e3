package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/medchart/medchart-api/internal/config"
	"github.com/medchart/medchart-api/internal/platform/postgres"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/service/auth"
	"github.com/medchart/medchart-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	patientStore store.PatientStore
	vitalStore   store.VitalStore

	// Service interfaces
	jwtService     auth.JWTService
	authService    auth.Service
	patientService service.PatientService
	vitalService   service.VitalService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.patientStore = postgres.NewPostgresPatientStore(db, logger)
	app.vitalStore = postgres.NewPostgresVitalStore(db, logger)

	// Initialize services
	app.authService = auth.NewService(
		app.userStore,
		app.jwtService,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		db,
		logger,
	)
	app.patientService = service.NewPatientService(app.patientStore, db, logger)
	app.vitalService = service.NewVitalService(app.vitalStore, app.patientStore, db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
