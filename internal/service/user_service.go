package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/phrazzld/ledger-api/internal/store"
)

// dummyPassword is hashed once at construction so that a login for an
// unknown email still pays for one password comparison.
const dummyPassword = "ledger-api-dummy-password"

// UserService provides account signup and login.
type UserService interface {
	// Signup creates a user with a hashed password.
	// Returns ErrEmailTaken if the email already has an account.
	Signup(ctx context.Context, email, password string) (*domain.User, error)

	// Login verifies the credentials and returns a signed token.
	// Returns ErrIncorrectCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (string, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	tokens    auth.TokenService
	logger    *slog.Logger
	dummyHash string
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
// If logger is nil, the default logger is used.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) (*UserServiceImpl, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With("component", "user_service"),
		dummyHash: dummyHash,
	}, nil
}

// Signup checks the email, hashes the password and stores the user.
//
// The existence check and the insert are not atomic. Two concurrent signups
// for one email are settled by the unique index on users.email, and the loser
// gets ErrEmailTaken like a sequential duplicate.
func (s *UserServiceImpl) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	email = strings.TrimSpace(email)

	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		log.Debug("attempted to create user with existing email")
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}
	if err != nil {
		return nil, fmt.Errorf("hashing failed: %w", err)
	}

	user, err := domain.NewUser(email, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("lost signup race for email")
			return nil, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// Login looks the user up by email and verifies the password. An unknown
// email is verified against a dummy hash before failing.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			return "", fmt.Errorf("failed to retrieve user: %w", err)
		}
		s.hasher.Verify(password, s.dummyHash)
		log.Debug("login failed")
		return "", ErrIncorrectCredentials
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		log.Debug("login failed", "user_id", user.ID)
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Debug("login succeeded", "user_id", user.ID)
	return token, nil
}
