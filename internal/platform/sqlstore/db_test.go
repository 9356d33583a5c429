package sqlstore

import (
	"context"
	"testing"

	"github.com/phrazzld/ledger-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	t.Parallel()

	query := "SELECT a FROM t WHERE b = ? AND c = ? LIMIT ? OFFSET ?"

	assert.Equal(t, query, Rebind(SQLite, query))
	assert.Equal(t,
		"SELECT a FROM t WHERE b = $1 AND c = $2 LIMIT $3 OFFSET $4",
		Rebind(Postgres, query))
	assert.Equal(t, "SELECT 1", Rebind(Postgres, "SELECT 1"))
}

func TestPageClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      store.Page
		wantQuery string
		wantArgs  []any
	}{
		{"unbounded", store.Page{}, "Q", []any{"x"}},
		{"offset without limit is ignored", store.Page{Offset: 5}, "Q", []any{"x"}},
		{"bounded", store.Page{Offset: 5, Limit: 2}, "Q LIMIT ? OFFSET ?", []any{"x", 2, 5}},
		{"negative offset clamps", store.Page{Offset: -3, Limit: 2}, "Q LIMIT ? OFFSET ?", []any{"x", 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, args := pageClause("Q", []any{"x"}, tt.page)
			assert.Equal(t, tt.wantQuery, q)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDialectForDriver(t *testing.T) {
	t.Parallel()

	d, err := DialectForDriver("pgx")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	d, err = DialectForDriver("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = DialectForDriver("mysql")
	assert.Error(t, err)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, _, err := Open(context.Background(), Options{Driver: "mysql", URL: "x"})
	assert.Error(t, err)
}

func TestMigrator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	migrator, err := NewMigrator(db, SQLite, nil)
	require.NoError(t, err)

	version, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Applying again is a no-op.
	require.NoError(t, migrator.Up(ctx))
	require.NoError(t, migrator.Status(ctx))

	require.NoError(t, migrator.Down(ctx))
	version, err = migrator.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	_, err = db.ExecContext(ctx, "SELECT 1 FROM categories")
	assert.Error(t, err, "tables are dropped by the down migration")

	_, err = NewMigrator(db, Dialect("oracle"), nil)
	assert.Error(t, err)
}
