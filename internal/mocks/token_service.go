package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// IssueFn allows test cases to mock the Issue behavior
	IssueFn func(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	IssueErr  error
	Claims    *auth.Claims
	VerifyErr error

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the auth.TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID, email)
	}
	return m.Token, m.IssueErr
}

// Verify implements the auth.TokenService interface
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Claims, m.VerifyErr
}
