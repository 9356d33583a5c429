package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/phrazzld/ledger-api/internal/platform/sqlstore"
	"github.com/phrazzld/ledger-api/internal/redact"
)

// setupDatabase opens and pings the configured database.
func setupDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, sqlstore.Dialect, error) {
	db, dialect, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:       cfg.Database.Driver,
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %s", redact.Error(err))
	}

	logger.Info("Database connection established", slog.String("dialect", string(dialect)))
	return db, dialect, nil
}
