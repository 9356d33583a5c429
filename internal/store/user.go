package store

import (
	"context"

	"github.com/phrazzld/ledger-api/internal/domain"
)

// UserStore is the credential store consulted by signup and login.
type UserStore interface {
	// Create saves a new user. The user must already carry a password hash.
	// Returns ErrEmailExists if the email is taken; this is the authoritative
	// uniqueness check, ExistsByEmail is advisory.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
