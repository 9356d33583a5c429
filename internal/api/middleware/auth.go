package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/redact"
	"github.com/phrazzld/ledger-api/internal/service/auth"
)

// TokenHeader carries the bearer token on protected requests.
const TokenHeader = "x-access-token"

// AuthMiddleware gates protected routes on a valid x-access-token.
type AuthMiddleware struct {
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
// If logger is nil, the default logger is used.
func NewAuthMiddleware(tokens auth.TokenService, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger.With("component", "auth_middleware"),
	}
}

// Stage verifies the request token. On success the claims are added to the
// context; otherwise a terminal reply is returned:
//   - no token: 400 "x-access-token not defined"
//   - rejected token: 401 "Invalid token. <reason>"
//   - anything else, panics included: 500 "Server error. ..."
func (m *AuthMiddleware) Stage(r *http.Request) (next *http.Request, reply *shared.Reply) {
	log := logger.FromContextOrDefault(r.Context(), m.logger)

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic during authentication: %v", rec)
			log.Error("authentication fault", "error", redact.Error(err))
			next, reply = nil, shared.ServerError("authentication failed", err)
		}
	}()

	token := r.Header.Get(TokenHeader)
	if token == "" {
		log.Debug("bad request. x-access-token not defined")
		return nil, shared.Fail(http.StatusBadRequest, "x-access-token not defined", auth.ErrMissingToken)
	}

	claims, err := m.tokens.Verify(r.Context(), token)
	if err != nil {
		var verr *auth.VerificationError
		if errors.As(err, &verr) {
			return nil, shared.Fail(http.StatusUnauthorized, "Invalid token. "+verr.Error(), err)
		}
		return nil, shared.ServerError("authentication failed", err)
	}
	if claims == nil {
		return nil, shared.ServerError("authentication failed", errors.New("token service returned no claims"))
	}

	log.Debug("token decoded successfully", "user_id", claims.UserID)
	return r.WithContext(shared.WithClaims(r.Context(), claims)), nil
}
