package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ledger-api/internal/platform/sqlstore"
)

// runMigrations executes one --migrate command against db.
func runMigrations(ctx context.Context, db *sql.DB, dialect sqlstore.Dialect, command string, logger *slog.Logger) error {
	migrator, err := sqlstore.NewMigrator(db, dialect, logger)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	logger.Info("Executing migrations", slog.String("command", command))

	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "version":
		var version int64
		version, err = migrator.Version(ctx)
		if err == nil {
			logger.Info("Current migration version", slog.Int64("version", version))
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("Migrations finished", slog.String("command", command))
	return nil
}
