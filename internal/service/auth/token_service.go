package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies the bearer tokens presented in the
// x-access-token header.
type TokenService interface {
	// Issue creates a signed token carrying the user's id and email.
	Issue(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Verify checks the token signature (and expiry when present) and returns
	// the claims it carries. Every rejection is a *VerificationError.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims is the identity carried by a token. It is decoded from the token on
// every request and never refreshed from storage, so it can lag behind the
// user record until the next login.
type Claims struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp,omitempty"` // zero when the token does not expire
}
