package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/store"
)

const clientColumns = "id, detail, active, category_id, created_at, updated_at"

// ClientStore implements store.ClientStore.
type ClientStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewClientStore creates a ClientStore. If logger is nil, the default logger
// is used.
func NewClientStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *ClientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "client_store")),
	}
}

// Ensure ClientStore implements store.ClientStore interface
var _ store.ClientStore = (*ClientStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Detail, &c.Active, &c.CategoryID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List implements store.ClientStore.List
func (s *ClientStore) List(ctx context.Context, filter store.ClientFilter) ([]domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		where []string
		args  []any
	)
	if filter.ActiveOnly {
		where = append(where, "active = ?")
		args = append(args, true)
	}
	if filter.CategoryID != nil {
		where = append(where, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	query := "SELECT " + clientColumns + " FROM clients"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at, id"
	query, args = pageClause(query, args, filter.Page)

	rows, err := s.db.QueryContext(ctx, Rebind(s.dialect, query), args...)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, store.NewStoreError("client", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, store.NewStoreError("client", "list", "scan failed", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("client", "list", "iteration failed", err)
	}

	log.Debug("clients listed", slog.Int("count", len(clients)))
	return clients, nil
}

// Create implements store.ClientStore.Create
func (s *ClientStore) Create(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := client.Validate(); err != nil {
		log.Warn("client validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := "INSERT INTO clients (" + clientColumns + ") VALUES (?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		client.ID, client.Detail, client.Active, client.CategoryID, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		log.Error("failed to create client",
			slog.String("error", err.Error()),
			slog.String("client_id", client.ID.String()))
		return store.NewStoreError("client", "create", "insert failed", MapError(err))
	}

	log.Debug("client created",
		slog.String("client_id", client.ID.String()),
		slog.String("category_id", client.CategoryID.String()))
	return nil
}

// Update implements store.ClientStore.Update
func (s *ClientStore) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "UPDATE clients SET detail = ?, category_id = ?, updated_at = ? WHERE id = ?"
	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		client.Detail, client.CategoryID, time.Now().UTC(), client.ID)
	if err != nil {
		log.Error("failed to update client",
			slog.String("error", err.Error()),
			slog.String("client_id", client.ID.String()))
		return nil, store.NewStoreError("client", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrClientNotFound); err != nil {
		return nil, err
	}

	return s.get(ctx, client.ID)
}

// Deactivate implements store.ClientStore.Deactivate
func (s *ClientStore) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "UPDATE clients SET active = ?, updated_at = ? WHERE id = ?"
	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, query), false, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to deactivate client",
			slog.String("error", err.Error()),
			slog.String("client_id", id.String()))
		return nil, store.NewStoreError("client", "deactivate", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrClientNotFound); err != nil {
		return nil, err
	}

	log.Debug("client deactivated", slog.String("client_id", id.String()))
	return s.get(ctx, id)
}

func (s *ClientStore) get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := "SELECT " + clientColumns + " FROM clients WHERE id = ?"

	c, err := scanClient(s.db.QueryRowContext(ctx, Rebind(s.dialect, query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrClientNotFound
		}
		return nil, store.NewStoreError("client", "get", "query failed", MapError(err))
	}
	return &c, nil
}
