package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/ledger-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapErrorPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"unique", &pgconn.PgError{Code: uniqueViolationCode}, store.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: foreignKeyViolationCode}, store.ErrInvalidEntity},
		{"check", &pgconn.PgError{Code: checkViolationCode}, store.ErrInvalidEntity},
		{"not null", &pgconn.PgError{Code: notNullViolationCode}, store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.want)
		})
	}

	other := &pgconn.PgError{Code: "08006"}
	assert.Same(t, other, MapError(other))
	assert.Nil(t, MapError(nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, MapError(plain))
}

func TestMapErrorSQLite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES ('a', 'x@example.com', 'h')")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES ('b', 'x@example.com', 'h')")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate)

	_, err = db.ExecContext(ctx,
		"INSERT INTO transactions (id, detail, status, client_id) VALUES ('t', 'd', 'bogus', 'c')")
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity)

	_, err = db.ExecContext(ctx,
		"INSERT INTO categories (id, detail) VALUES ('c', NULL)")
	require.Error(t, err)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity)
	assert.False(t, IsUniqueViolation(err))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrClientNotFound))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, store.ErrClientNotFound), store.ErrClientNotFound)
	assert.Error(t, CheckRowsAffected(fakeResult{err: errors.New("nope")}, store.ErrNotFound))
	assert.Error(t, CheckRowsAffected(nil, store.ErrNotFound))
}
