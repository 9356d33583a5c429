package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/service"
)

// UserHandler serves signup and login.
type UserHandler struct {
	users  service.UserService
	opts   Options
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
// If logger is nil, the default logger is used.
func NewUserHandler(users service.UserService, opts Options, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		opts:   opts,
		logger: logger.With("component", "user_handler"),
	}
}

// Signup handles POST /user. The reply carries the user without its
// password hash.
func (h *UserHandler) Signup(r *http.Request) *shared.Reply {
	body := shared.BodyFromContext(r.Context())

	user, err := h.users.Signup(r.Context(), body.String("email"), body.String("password"))
	switch {
	case err == nil:
		return shared.OK(shared.Data{"user": user})
	case errors.Is(err, service.ErrEmailTaken):
		return h.opts.emailTaken(err)
	case errors.Is(err, service.ErrInvalidUser):
		return shared.Fail(http.StatusBadRequest, err.Error(), err)
	default:
		return h.opts.storeFailure(err)
	}
}

// Login handles POST /user/auth. An unknown email and a wrong password get
// the same reply.
func (h *UserHandler) Login(r *http.Request) *shared.Reply {
	body := shared.BodyFromContext(r.Context())

	token, err := h.users.Login(r.Context(), body.String("email"), body.String("password"))
	switch {
	case err == nil:
		return shared.OK(shared.Data{"token": token})
	case errors.Is(err, service.ErrIncorrectCredentials):
		return shared.Fail(http.StatusBadRequest, msgIncorrectCreds, err)
	default:
		return h.opts.storeFailure(err)
	}
}
