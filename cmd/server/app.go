package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/phrazzld/ledger-api/internal/platform/sqlstore"
	"github.com/phrazzld/ledger-api/internal/service"
	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/phrazzld/ledger-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger  *slog.Logger
	db      *sql.DB
	dialect sqlstore.Dialect

	userStore        store.UserStore
	categoryStore    store.CategoryStore
	clientStore      store.ClientStore
	transactionStore store.TransactionStore

	tokenService   auth.TokenService
	passwordHasher auth.PasswordHasher
	userService    service.UserService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, dialect sqlstore.Dialect) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		dialect: dialect,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.passwordHasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = sqlstore.NewUserStore(db, dialect, logger)
	app.categoryStore = sqlstore.NewCategoryStore(db, dialect, logger)
	app.clientStore = sqlstore.NewClientStore(db, dialect, logger)
	app.transactionStore = sqlstore.NewTransactionStore(db, dialect, logger)

	app.userService, err = service.NewUserService(app.userStore, app.passwordHasher, app.tokenService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down and releases
// resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
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
