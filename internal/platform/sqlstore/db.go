package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/ledger-api/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// Dialect identifies the SQL flavour a store talks to.
type Dialect string

const (
	// Postgres is PostgreSQL through the pgx driver.
	Postgres Dialect = "postgres"
	// SQLite is an embedded SQLite database.
	SQLite Dialect = "sqlite"
)

// Driver names as registered with database/sql.
const (
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

// DialectForDriver maps a database/sql driver name onto its Dialect.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case DriverPgx:
		return Postgres, nil
	case DriverSQLite:
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Options configures Open.
type Options struct {
	Driver       string
	URL          string
	MaxOpenConns int
}

// Open opens and pings a database connection pool. SQLite is limited to a
// single connection so in-memory databases stay one database and writers
// never contend.
func Open(ctx context.Context, opts Options) (*sql.DB, Dialect, error) {
	dialect, err := DialectForDriver(opts.Driver)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(opts.Driver, opts.URL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database connection: %w", err)
	}

	switch dialect {
	case SQLite:
		db.SetMaxOpenConns(1)
	default:
		maxOpen := opts.MaxOpenConns
		if maxOpen <= 0 {
			maxOpen = 10
		}
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen / 2)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	return db, dialect, nil
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
// Queries in this package never contain a literal question mark.
func Rebind(dialect Dialect, query string) string {
	if dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// pageClause appends LIMIT/OFFSET for a bounded page. An offset without a
// limit is ignored.
func pageClause(query string, args []any, page store.Page) (string, []any) {
	if !page.Bounded() {
		return query, args
	}
	query += " LIMIT ? OFFSET ?"
	return query, append(args, page.Limit, max(page.Offset, 0))
}
