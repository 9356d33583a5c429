package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
)

// TransactionFilter narrows a transaction list.
type TransactionFilter struct {
	ClientID *uuid.UUID
	Page     Page
}

// TransactionStore defines the interface for transaction persistence.
type TransactionStore interface {
	// List returns transactions matching the filter in creation order.
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// Create saves a new transaction.
	Create(ctx context.Context, tx *domain.Transaction) error

	// Update replaces detail, status and client of an existing transaction
	// and returns the stored row.
	// Returns ErrTransactionNotFound if the ID does not exist.
	Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)

	// Delete removes a transaction permanently and returns the removed row.
	// Returns ErrTransactionNotFound if the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
}
