package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
)

// ClientFilter narrows a client list. ActiveOnly is what the API always uses.
type ClientFilter struct {
	ActiveOnly bool
	CategoryID *uuid.UUID
	Page       Page
}

// ClientStore defines the interface for client persistence.
type ClientStore interface {
	// List returns clients matching the filter in creation order.
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)

	// Create saves a new client.
	Create(ctx context.Context, client *domain.Client) error

	// Update replaces detail and category of an existing client and returns
	// the stored row. Active is left untouched.
	// Returns ErrClientNotFound if the ID does not exist.
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)

	// Deactivate sets active=false and returns the stored row.
	// Returns ErrClientNotFound if the ID does not exist.
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
