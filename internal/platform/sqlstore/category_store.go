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

const categoryColumns = "id, detail, created_at, updated_at"

// CategoryStore implements store.CategoryStore.
type CategoryStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewCategoryStore creates a CategoryStore. If logger is nil, the default
// logger is used.
func NewCategoryStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "category_store")),
	}
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// List implements store.CategoryStore.List
func (s *CategoryStore) List(ctx context.Context, page store.Page) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := pageClause("SELECT "+categoryColumns+" FROM categories ORDER BY created_at, id", nil, page)
	rows, err := s.db.QueryContext(ctx, Rebind(s.dialect, query), args...)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, store.NewStoreError("category", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Detail, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, store.NewStoreError("category", "list", "scan failed", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("category", "list", "iteration failed", err)
	}

	log.Debug("categories listed", slog.Int("count", len(categories)))
	return categories, nil
}

// Create implements store.CategoryStore.Create
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := "INSERT INTO categories (" + categoryColumns + ") VALUES (?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		category.ID, category.Detail, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return store.NewStoreError("category", "create", "insert failed", MapError(err))
	}

	log.Debug("category created", slog.String("category_id", category.ID.String()))
	return nil
}

// Update implements store.CategoryStore.Update
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "UPDATE categories SET detail = ?, updated_at = ? WHERE id = ?"
	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, query),
		category.Detail, time.Now().UTC(), category.ID)
	if err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return nil, store.NewStoreError("category", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return nil, err
	}

	return s.get(ctx, category.ID)
}

// Delete implements store.CategoryStore.Delete
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, Rebind(s.dialect, "DELETE FROM categories WHERE id = ?"), id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, store.NewStoreError("category", "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return nil, err
	}

	log.Debug("category deleted", slog.String("category_id", id.String()))
	return category, nil
}

func (s *CategoryStore) get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE id = ?"

	var c domain.Category
	err := s.db.QueryRowContext(ctx, Rebind(s.dialect, query), id).
		Scan(&c.ID, &c.Detail, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, store.NewStoreError("category", "get", "query failed", MapError(err))
	}
	return &c, nil
}
