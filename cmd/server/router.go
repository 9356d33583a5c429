package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ledger-api/internal/api"
	apiMiddleware "github.com/phrazzld/ledger-api/internal/api/middleware"
	"github.com/phrazzld/ledger-api/internal/api/validation"
)

// setupRouter creates the chi router with the standard middleware, the API
// route table and the health check.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	opts := api.Options{StrictNotFound: app.config.API.StrictNotFound}

	handlers := api.Handlers{
		Users:        api.NewUserHandler(app.userService, opts, app.logger),
		Categories:   api.NewCategoryHandler(app.categoryStore, opts, app.logger),
		Clients:      api.NewClientHandler(app.clientStore, app.transactionStore, opts, app.logger),
		Transactions: api.NewTransactionHandler(app.transactionStore, opts, app.logger),
	}
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.logger)

	api.Mount(r, api.Routes(handlers), validation.New(), authMiddleware, app.logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
