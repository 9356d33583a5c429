package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/ledger-api/internal/api/middleware"
	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/api/validation"
)

// Route is one entry of the route table.
type Route struct {
	Method  string
	Pattern string

	// Rules are evaluated before authentication. Empty rules skip body
	// decoding entirely.
	Rules validation.RuleSet

	// RejectStatus answers violations; zero means 422.
	RejectStatus int

	// Protected routes require a valid x-access-token.
	Protected bool

	Handle HandleFunc
}

// Handlers groups the resource handlers the route table dispatches to.
type Handlers struct {
	Users        *UserHandler
	Categories   *CategoryHandler
	Clients      *ClientHandler
	Transactions *TransactionHandler
}

// Routes returns the full route table of the API.
func Routes(h Handlers) []Route {
	return []Route{
		{Method: http.MethodPost, Pattern: "/user", Rules: validation.SignupRules,
			RejectStatus: http.StatusBadRequest, Handle: h.Users.Signup},
		{Method: http.MethodPost, Pattern: "/user/auth", Rules: validation.LoginRules,
			Handle: h.Users.Login},

		{Method: http.MethodGet, Pattern: "/category", Protected: true,
			Handle: h.Categories.List},
		{Method: http.MethodPost, Pattern: "/category", Rules: validation.CategoryRules, Protected: true,
			Handle: h.Categories.Create},
		{Method: http.MethodPut, Pattern: "/category/{id}", Rules: validation.CategoryRules, Protected: true,
			Handle: h.Categories.Update},
		{Method: http.MethodDelete, Pattern: "/category/{id}", Protected: true,
			Handle: h.Categories.Delete},

		{Method: http.MethodGet, Pattern: "/client", Rules: validation.ClientListRules, Protected: true,
			Handle: h.Clients.List},
		{Method: http.MethodPost, Pattern: "/client", Rules: validation.ClientRules, Protected: true,
			Handle: h.Clients.Create},
		{Method: http.MethodPut, Pattern: "/client/{id}", Rules: validation.ClientRules, Protected: true,
			Handle: h.Clients.Update},
		{Method: http.MethodDelete, Pattern: "/client/{id}", Protected: true,
			Handle: h.Clients.Delete},

		{Method: http.MethodGet, Pattern: "/transaction", Rules: validation.TransactionListRules, Protected: true,
			Handle: h.Transactions.List},
		{Method: http.MethodPost, Pattern: "/transaction", Rules: validation.TransactionCreateRules, Protected: true,
			Handle: h.Transactions.Create},
		{Method: http.MethodPut, Pattern: "/transaction/{id}", Rules: validation.TransactionUpdateRules,
			Protected: true, Handle: h.Transactions.Update},
		{Method: http.MethodDelete, Pattern: "/transaction/{id}", Protected: true,
			Handle: h.Transactions.Delete},
	}
}

// Pipeline builds the stage chain for a route: validate, then authenticate
// when the route is protected.
func (rt Route) Pipeline(v *validation.Validator, authMiddleware *middleware.AuthMiddleware) Pipeline {
	var stages []shared.Stage
	if !rt.Rules.Empty() {
		stages = append(stages, v.Stage(rt.Rules))
	}
	if rt.Protected {
		stages = append(stages, authMiddleware.Stage)
	}

	status := rt.RejectStatus
	if status == 0 {
		status = http.StatusUnprocessableEntity
	}
	return Pipeline{Stages: stages, RejectStatus: status, Handle: rt.Handle}
}

// Mount registers every route on r.
func Mount(
	r chi.Router,
	routes []Route,
	v *validation.Validator,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, rt := range routes {
		r.Method(rt.Method, rt.Pattern, rt.Pipeline(v, authMiddleware))
		logger.Debug("route mounted",
			slog.String("method", rt.Method),
			slog.String("pattern", rt.Pattern),
			slog.Bool("protected", rt.Protected))
	}
}
