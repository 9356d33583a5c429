package mocks

import (
	"context"

	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	SignupFn func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFn  func(ctx context.Context, email, password string) (string, error)

	SignupCalls int
	LoginCalls  int
}

var _ service.UserService = (*MockUserService)(nil)

// Signup implements service.UserService.Signup
func (m *MockUserService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	m.SignupCalls++
	if m.SignupFn != nil {
		return m.SignupFn(ctx, email, password)
	}
	return domain.NewUser(email, "hashed:"+password)
}

// Login implements service.UserService.Login
func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	m.LoginCalls++
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return "", service.ErrIncorrectCredentials
}
