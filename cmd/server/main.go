// Package main is the entry point of the ledger API server. It loads
// configuration, sets up logging and the database, and either runs a
// migration command or serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/spf13/pflag"
)

// migrateCommands lists the values accepted by --migrate.
var migrateCommands = []string{"up", "down", "status", "version"}

// options are the command line flags of the server binary.
type options struct {
	configFile string
	migrate    string
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("ledger-api", pflag.ContinueOnError)
	fs.StringVarP(&opts.configFile, "config", "c", "", "path to a config file (default ./config.yaml if present)")
	fs.StringVar(&opts.migrate, "migrate", "",
		fmt.Sprintf("run a migration command and exit, one of %v", migrateCommands))

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.migrate != "" && !slices.Contains(migrateCommands, opts.migrate) {
		return options{}, fmt.Errorf("unknown migrate command %q, expected one of %v", opts.migrate, migrateCommands)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		stop()
		log.Fatalf("Server failed: %v", err)
	}
}

// run wires the process together and blocks until ctx is cancelled or a
// migration command has finished.
func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("strict_not_found", cfg.API.StrictNotFound))

	db, dialect, err := setupDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, dialect, opts.migrate, l)
	}

	app, err := newApplication(cfg, l, db, dialect)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
