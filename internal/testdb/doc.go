// Package testdb provides migrated databases for tests.
//
// Tests run against an in-memory SQLite database by default. Setting
// LEDGER_TEST_DATABASE_URL to a PostgreSQL URL runs the same tests against
// PostgreSQL through pgx instead.
//
// # Transaction Isolation Pattern
//
// WithTx runs a test body inside a transaction that is always rolled back, so
// tests sharing one PostgreSQL database do not see each other's rows:
//
//	db, dialect := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    users := sqlstore.NewUserStore(tx, dialect, nil)
//	    // ...
//	})
package testdb
