package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/ledger-api/internal/platform/sqlstore"
)

// EnvTestDatabaseURL selects a PostgreSQL database for tests.
const EnvTestDatabaseURL = "LEDGER_TEST_DATABASE_URL"

// Options returns the connection options tests use: PostgreSQL when
// EnvTestDatabaseURL is set, otherwise a private in-memory SQLite database.
func Options() sqlstore.Options {
	if url := os.Getenv(EnvTestDatabaseURL); url != "" {
		return sqlstore.Options{Driver: sqlstore.DriverPgx, URL: url, MaxOpenConns: 4}
	}
	return sqlstore.Options{Driver: sqlstore.DriverSQLite, URL: ":memory:"}
}

// Open returns a migrated database that is closed when the test ends.
func Open(t *testing.T) (*sql.DB, sqlstore.Dialect) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, dialect, err := sqlstore.Open(ctx, Options())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := sqlstore.NewMigrator(db, dialect, nil)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return db, dialect
}

// WithTx runs fn inside a transaction that is rolled back afterwards, even
// when fn fails the test.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
