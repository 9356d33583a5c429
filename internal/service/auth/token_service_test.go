package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService(config.AuthConfig{JWTSecret: "short"})
	assert.Error(t, err)

	svc, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	assert.NotNil(t, svc)

	_, err = newHMACTokenService(testSecret, -time.Minute, time.Now)
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("unbounded token", func(t *testing.T) {
		t.Parallel()

		svc, err := newHMACTokenService(testSecret, 0, fixedClock(issuedAt))
		require.NoError(t, err)

		token, err := svc.Issue(context.Background(), userID, "user@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Years later, still valid: no exp claim was set.
		svc.timeFunc = fixedClock(issuedAt.AddDate(5, 0, 0))
		claims, err := svc.Verify(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
		assert.True(t, claims.ExpiresAt.IsZero())
	})

	t.Run("bounded token carries exp", func(t *testing.T) {
		t.Parallel()

		svc, err := newHMACTokenService(testSecret, time.Hour, fixedClock(issuedAt))
		require.NoError(t, err)

		token, err := svc.Issue(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		claims, err := svc.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	})
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	signer, err := newHMACTokenService(testSecret, time.Hour, fixedClock(issuedAt))
	require.NoError(t, err)
	otherSigner, err := newHMACTokenService(wrongSecret, 0, fixedClock(issuedAt))
	require.NoError(t, err)

	valid, err := signer.Issue(context.Background(), userID, "a@example.com")
	require.NoError(t, err)
	foreign, err := otherSigner.Issue(context.Background(), userID, "a@example.com")
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtCustomClaims{UserID: userID}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name     string
		token    string
		now      time.Time
		kind     VerificationKind
		sentinel error
	}{
		{"garbage", "not-a-token", issuedAt, Malformed, ErrMalformedToken},
		{"empty", "", issuedAt, Malformed, ErrMalformedToken},
		{"different secret", foreign, issuedAt, SignatureInvalid, ErrInvalidSignature},
		{"tampered signature", tampered, issuedAt, SignatureInvalid, ErrInvalidSignature},
		{"unexpected algorithm", hs512, issuedAt, SignatureInvalid, ErrInvalidSignature},
		{"expired", valid, issuedAt.Add(2 * time.Hour), Expired, ErrExpiredToken},
		{"missing identity", noIdentity, issuedAt, Malformed, ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := newHMACTokenService(testSecret, time.Hour, fixedClock(tt.now))
			require.NoError(t, err)

			claims, err := verifier.Verify(context.Background(), tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)

			var verr *VerificationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.kind, verr.Kind)
			assert.Equal(t, string(tt.kind), err.Error())
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
