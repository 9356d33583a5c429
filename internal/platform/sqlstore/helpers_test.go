package sqlstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// newTestDB returns a migrated in-memory SQLite database closed at test end.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, dialect, err := Open(context.Background(), Options{Driver: DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrator, err := NewMigrator(db, dialect, nil)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(context.Background()))

	return db
}

// at returns a fixed UTC instant offset by n seconds, for deterministic ordering.
func at(n int) time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second)
}

func mustCategory(t *testing.T, detail string, created time.Time) *domain.Category {
	t.Helper()
	c, err := domain.NewCategory(detail)
	require.NoError(t, err)
	c.CreatedAt, c.UpdatedAt = created, created
	return c
}

func mustClient(t *testing.T, detail string, categoryID uuid.UUID, created time.Time) *domain.Client {
	t.Helper()
	c, err := domain.NewClient(detail, categoryID)
	require.NoError(t, err)
	c.CreatedAt, c.UpdatedAt = created, created
	return c
}

func mustTransaction(t *testing.T, detail string, clientID uuid.UUID, created time.Time) *domain.Transaction {
	t.Helper()
	tx, err := domain.NewTransaction(detail, "", clientID)
	require.NoError(t, err)
	tx.CreatedAt, tx.UpdatedAt = created, created
	return tx
}
