package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/store"
)

// CategoryHandler serves /category.
type CategoryHandler struct {
	categories store.CategoryStore
	opts       Options
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
// If logger is nil, the default logger is used.
func NewCategoryHandler(categories store.CategoryStore, opts Options, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		categories: categories,
		opts:       opts,
		logger:     logger.With("component", "category_handler"),
	}
}

// List handles GET /category.
func (h *CategoryHandler) List(r *http.Request) *shared.Reply {
	categories, err := h.categories.List(r.Context(), queryPage(r))
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"categories": categories})
}

// Create handles POST /category.
func (h *CategoryHandler) Create(r *http.Request) *shared.Reply {
	body := shared.BodyFromContext(r.Context())

	category, err := domain.NewCategory(body.String("detail"))
	if err != nil {
		return invalid(err)
	}
	if err := h.categories.Create(r.Context(), category); err != nil {
		return h.opts.storeFailure(err)
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("category created", slog.String("category_id", category.ID.String()))
	return shared.OK(shared.Data{"category": category})
}

// Update handles PUT /category/{id}.
func (h *CategoryHandler) Update(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrCategoryNotFound)
	}
	body := shared.BodyFromContext(r.Context())

	category := &domain.Category{ID: id, Detail: strings.TrimSpace(body.String("detail"))}
	if err := category.Validate(); err != nil {
		return invalid(err)
	}

	updated, err := h.categories.Update(r.Context(), category)
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"category": updated})
}

// Delete handles DELETE /category/{id}. The row is removed permanently.
func (h *CategoryHandler) Delete(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrCategoryNotFound)
	}

	removed, err := h.categories.Delete(r.Context(), id)
	if err != nil {
		return h.opts.storeFailure(err)
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("category deleted", slog.String("category_id", id.String()))
	return shared.OK(shared.Data{"category": removed})
}
