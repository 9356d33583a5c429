package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	ListFn   func(ctx context.Context, page store.Page) ([]domain.Category, error)
	CreateFn func(ctx context.Context, category *domain.Category) error
	UpdateFn func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Calls counts invocations per method name
	Calls map[string]int
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

func count(calls *map[string]int, name string) {
	if *calls == nil {
		*calls = make(map[string]int)
	}
	(*calls)[name]++
}

// List implements store.CategoryStore.List
func (m *MockCategoryStore) List(ctx context.Context, page store.Page) ([]domain.Category, error) {
	count(&m.Calls, "List")
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	return []domain.Category{}, nil
}

// Create implements store.CategoryStore.Create
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	count(&m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return nil
}

// Update implements store.CategoryStore.Update
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	count(&m.Calls, "Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}
	return category, nil
}

// Delete implements store.CategoryStore.Delete
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	count(&m.Calls, "Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, store.ErrCategoryNotFound
}

// MockClientStore implements store.ClientStore for testing
type MockClientStore struct {
	ListFn       func(ctx context.Context, filter store.ClientFilter) ([]domain.Client, error)
	CreateFn     func(ctx context.Context, client *domain.Client) error
	UpdateFn     func(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeactivateFn func(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	// Calls counts invocations per method name
	Calls map[string]int
}

var _ store.ClientStore = (*MockClientStore)(nil)

// List implements store.ClientStore.List
func (m *MockClientStore) List(ctx context.Context, filter store.ClientFilter) ([]domain.Client, error) {
	count(&m.Calls, "List")
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []domain.Client{}, nil
}

// Create implements store.ClientStore.Create
func (m *MockClientStore) Create(ctx context.Context, client *domain.Client) error {
	count(&m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, client)
	}
	return nil
}

// Update implements store.ClientStore.Update
func (m *MockClientStore) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	count(&m.Calls, "Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, client)
	}
	return client, nil
}

// Deactivate implements store.ClientStore.Deactivate
func (m *MockClientStore) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	count(&m.Calls, "Deactivate")
	if m.DeactivateFn != nil {
		return m.DeactivateFn(ctx, id)
	}
	return nil, store.ErrClientNotFound
}

// MockTransactionStore implements store.TransactionStore for testing
type MockTransactionStore struct {
	ListFn   func(ctx context.Context, filter store.TransactionFilter) ([]domain.Transaction, error)
	CreateFn func(ctx context.Context, tx *domain.Transaction) error
	UpdateFn func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	DeleteFn func(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)

	// Calls counts invocations per method name
	Calls map[string]int
}

var _ store.TransactionStore = (*MockTransactionStore)(nil)

// List implements store.TransactionStore.List
func (m *MockTransactionStore) List(ctx context.Context, filter store.TransactionFilter) ([]domain.Transaction, error) {
	count(&m.Calls, "List")
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []domain.Transaction{}, nil
}

// Create implements store.TransactionStore.Create
func (m *MockTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	count(&m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}
	return nil
}

// Update implements store.TransactionStore.Update
func (m *MockTransactionStore) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	count(&m.Calls, "Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, tx)
	}
	return tx, nil
}

// Delete implements store.TransactionStore.Delete
func (m *MockTransactionStore) Delete(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	count(&m.Calls, "Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, store.ErrTransactionNotFound
}
