// Package store defines the persistence contracts for users, categories,
// clients and transactions. Handlers depend on these interfaces only; the
// SQL implementations live in internal/platform/sqlstore.
package store
