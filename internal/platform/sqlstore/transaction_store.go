package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/store"
)

const transactionColumns = "id, detail, status, client_id, created_at, updated_at"

// TransactionStore implements store.TransactionStore.
type TransactionStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewTransactionStore creates a TransactionStore. If logger is nil, the
// default logger is used.
func NewTransactionStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *TransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "transaction_store")),
	}
}

// Ensure TransactionStore implements store.TransactionStore interface
var _ store.TransactionStore = (*TransactionStore)(nil)

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		t      domain.Transaction
		status string
	)
	err := row.Scan(&t.ID, &t.Detail, &status, &t.ClientID, &t.CreatedAt, &t.UpdatedAt)
	t.Status = domain.TransactionStatus(status)
	return t, err
}

// List implements store.TransactionStore.List
func (s *TransactionStore) List(ctx context.Context, filter store.TransactionFilter) ([]domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + transactionColumns + " FROM transactions"
	var args []any
	if filter.ClientID != nil {
		query += " WHERE client_id = ?"
		args = append(args, *filter.ClientID)
	}
	query += " ORDER BY created_at, id"
	query, args = pageClause(query, args, filter.Page)

	rows, err := s.db.QueryContext(ctx, Rebind(s.dialect, query), args...)
	if err != nil {
		log.Error("failed to list transactions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("transaction", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, store.NewStoreError("transaction", "list", "scan failed", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("transaction", "list", "iteration failed", err)
	}

	return transactions, nil
}

// Create implements store.TransactionStore.Create
func (s *TransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tx.Validate(); err != nil {
		log.Warn("transaction validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := "INSERT INTO transactions (" + transactionColumns + ") VALUES (?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		tx.ID, tx.Detail, string(tx.Status), tx.ClientID, tx.CreatedAt, tx.UpdatedAt)
	if err != nil {
		log.Error("failed to create transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", tx.ID.String()))
		return store.NewStoreError("transaction", "create", "insert failed", MapError(err))
	}

	log.Debug("transaction created",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("client_id", tx.ClientID.String()),
		slog.String("status", string(tx.Status)))
	return nil
}

// Update implements store.TransactionStore.Update
func (s *TransactionStore) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "UPDATE transactions SET detail = ?, status = ?, client_id = ?, updated_at = ? WHERE id = ?"
	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		tx.Detail, string(tx.Status), tx.ClientID, time.Now().UTC(), tx.ID)
	if err != nil {
		log.Error("failed to update transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", tx.ID.String()))
		return nil, store.NewStoreError("transaction", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrTransactionNotFound); err != nil {
		return nil, err
	}

	return s.get(ctx, tx.ID)
}

// Delete implements store.TransactionStore.Delete
func (s *TransactionStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tx, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, "DELETE FROM transactions WHERE id = ?"), id)
	if err != nil {
		log.Error("failed to delete transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_id", id.String()))
		return nil, store.NewStoreError("transaction", "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrTransactionNotFound); err != nil {
		return nil, err
	}

	log.Debug("transaction deleted", slog.String("transaction_id", id.String()))
	return tx, nil
}

func (s *TransactionStore) get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE id = ?"

	t, err := scanTransaction(s.db.QueryRowContext(ctx, Rebind(s.dialect, query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTransactionNotFound
		}
		return nil, store.NewStoreError("transaction", "get", "query failed", MapError(err))
	}
	return &t, nil
}
