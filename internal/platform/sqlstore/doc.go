// Package sqlstore implements the persistence interfaces of internal/store on
// top of database/sql. It speaks two dialects: PostgreSQL through the pgx
// stdlib driver and SQLite through modernc.org/sqlite. Queries are written
// with '?' placeholders and rebound per dialect; schema changes ship as
// embedded goose migrations, one directory per dialect.
package sqlstore
