package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/mocks"
	"github.com/phrazzld/ledger-api/internal/service"
	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/phrazzld/ledger-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Signup(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var created *domain.User
	f.users.CreateFn = func(ctx context.Context, u *domain.User) error {
		created = u
		return nil
	}

	resp := do(t, f.router(t), http.MethodPost, "/user", "",
		map[string]any{"email": "new@example.com", "password": "correct horse"})

	require.Equal(t, http.StatusOK, resp.Code)
	require.NotNil(t, created)
	assert.Equal(t, "hashed:correct horse", created.HashedPassword)
	assert.True(t, created.Active)

	raw := string(resp.Data["user"])
	assert.NotContains(t, raw, "hashed:")
	assert.NotContains(t, raw, "password")

	var user struct {
		ID     uuid.UUID `json:"id"`
		Email  string    `json:"email"`
		Active bool      `json:"active"`
	}
	resp.decode(t, "user", &user)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.True(t, user.Active)
}

func TestUserHandler_SignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		strict         bool
		existsFirst    bool
		expectedStatus int
	}{
		{name: "existing email", existsFirst: true, expectedStatus: http.StatusOK},
		{name: "existing email in strict mode", existsFirst: true, strict: true, expectedStatus: http.StatusConflict},
		{name: "concurrent signup loses at insert", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.opts.StrictNotFound = tt.strict
			f.users.ExistsByEmailFn = func(ctx context.Context, email string) (bool, error) {
				return tt.existsFirst, nil
			}
			f.users.CreateFn = func(ctx context.Context, u *domain.User) error {
				return store.ErrEmailExists
			}

			resp := do(t, f.router(t), http.MethodPost, "/user", "",
				map[string]any{"email": "taken@example.com", "password": "secret"})

			assert.Equal(t, tt.expectedStatus, resp.Code)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "Email not available", resp.errorMessage(t))
		})
	}
}

func TestUserHandler_SignupValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	resp := do(t, f.router(t), http.MethodPost, "/user", "", map[string]any{"email": "not-an-email"})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	violations := resp.violations(t)
	require.Len(t, violations, 2)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, "email", violations[0].Rule)
	assert.Equal(t, "password", violations[1].Field)
	assert.Equal(t, "required", violations[1].Rule)
	assert.Empty(t, f.users.Created)
}

func TestUserHandler_SignupMultibytePasswordTooLong(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	resp := do(t, f.router(t), http.MethodPost, "/user", "",
		map[string]any{"email": "a@example.com", "password": strings.Repeat("é", 72)})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	violations := resp.violations(t)
	require.Len(t, violations, 1)
	assert.Equal(t, "password", violations[0].Field)
	assert.Equal(t, "bcryptlen", violations[0].Rule)
	assert.Equal(t, "must be at most 72 bytes", violations[0].Message)
	assert.Empty(t, f.users.Created)
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	stored := &domain.User{
		ID:             uuid.New(),
		Email:          "known@example.com",
		HashedPassword: "hashed:right",
		Active:         true,
	}
	f.users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		if email == stored.Email {
			return stored, nil
		}
		return nil, store.ErrUserNotFound
	}
	f.hasher.VerifyFn = func(plaintext, hash string) bool {
		return "hashed:"+plaintext == hash
	}
	router := f.router(t)

	resp := do(t, router, http.MethodPost, "/user/auth", "",
		map[string]any{"email": stored.Email, "password": "right"})
	require.Equal(t, http.StatusOK, resp.Code)

	var token string
	resp.decode(t, "token", &token)
	claims, err := f.tokens.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, stored.Email, claims.Email)

	resp = do(t, router, http.MethodGet, "/category", token, nil)
	assert.Equal(t, http.StatusOK, resp.Code, "issued token opens protected routes")
}

func TestUserHandler_LoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "known@example.com" {
			return &domain.User{ID: uuid.New(), Email: email, HashedPassword: "hashed:right"}, nil
		}
		return nil, store.ErrUserNotFound
	}
	f.hasher.ShouldSucceed = false
	router := f.router(t)

	wrongPassword := do(t, router, http.MethodPost, "/user/auth", "",
		map[string]any{"email": "known@example.com", "password": "wrong"})
	unknownEmail := do(t, router, http.MethodPost, "/user/auth", "",
		map[string]any{"email": "ghost@example.com", "password": "wrong"})

	for _, resp := range []response{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Incorrect credentials", resp.errorMessage(t))
	}
	assert.Equal(t, wrongPassword, unknownEmail)

	require.Len(t, f.hasher.VerifyCalledWith, 2, "unknown email still pays for a comparison")
	assert.NotEqual(t, "hashed:right", f.hasher.VerifyCalledWith[1].Hash)
	assert.NotEmpty(t, f.hasher.VerifyCalledWith[1].Hash)
}

func TestUserHandler_LoginStorageFault(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, store.NewStoreError("user", "get", "query failed", errors.New("connection refused"))
	}

	resp := do(t, f.router(t), http.MethodPost, "/user/auth", "",
		map[string]any{"email": "known@example.com", "password": "pw"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Server error. get user failed", resp.errorMessage(t))
}

func TestUserHandler_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		signupErr      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "domain rejects the user",
			signupErr:      fmt.Errorf("%w: %w", service.ErrInvalidUser, domain.ErrInvalidEmail),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid user data: invalid email format",
		},
		{
			name:           "email taken after a race",
			signupErr:      fmt.Errorf("%w: %w", service.ErrEmailTaken, store.ErrEmailExists),
			expectedStatus: http.StatusOK,
			expectedError:  "Email not available",
		},
		{
			name:           "password over bcrypt limit",
			signupErr:      fmt.Errorf("%w: %w", service.ErrInvalidUser, auth.ErrPasswordTooLong),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid user data: password exceeds 72 bytes",
		},
		{
			name:           "hashing failed",
			signupErr:      errors.New("hashing failed: entropy exhausted"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Server error. unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			users := &mocks.MockUserService{
				SignupFn: func(ctx context.Context, email, password string) (*domain.User, error) {
					return nil, tt.signupErr
				},
			}
			h := NewUserHandler(users, Options{}, nil)
			p := Pipeline{Handle: h.Signup}

			resp := do(t, p, http.MethodPost, "/user", "", map[string]any{"email": "a@example.com"})

			assert.Equal(t, tt.expectedStatus, resp.Code)
			assert.Equal(t, tt.expectedError, resp.errorMessage(t))
			assert.Equal(t, 1, users.SignupCalls)
		})
	}
}
