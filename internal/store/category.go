package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// List returns categories in creation order.
	List(ctx context.Context, page Page) ([]domain.Category, error)

	// Create saves a new category.
	Create(ctx context.Context, category *domain.Category) error

	// Update replaces the detail of an existing category and returns the
	// stored row.
	// Returns ErrCategoryNotFound if the ID does not exist.
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)

	// Delete removes a category permanently and returns the removed row.
	// Returns ErrCategoryNotFound if the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}
