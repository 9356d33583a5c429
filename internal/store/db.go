package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Page bounds a list query. Offset is only honoured when Limit is positive,
// so a bare offset returns every row.
type Page struct {
	Offset int
	Limit  int
}

// Bounded reports whether the page restricts the result set.
func (p Page) Bounded() bool {
	return p.Limit > 0
}
