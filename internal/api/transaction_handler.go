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

// TransactionHandler serves /transaction.
type TransactionHandler struct {
	transactions store.TransactionStore
	opts         Options
	logger       *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
// If logger is nil, the default logger is used.
func NewTransactionHandler(transactions store.TransactionStore, opts Options, logger *slog.Logger) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		transactions: transactions,
		opts:         opts,
		logger:       logger.With("component", "transaction_handler"),
	}
}

// List handles GET /transaction, optionally narrowed by ?clientId.
func (h *TransactionHandler) List(r *http.Request) *shared.Reply {
	txs, err := h.transactions.List(r.Context(), store.TransactionFilter{
		ClientID: queryUUID(r, "clientId"),
		Page:     queryPage(r),
	})
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"transactions": txs})
}

// Create handles POST /transaction. A missing status defaults to pending.
func (h *TransactionHandler) Create(r *http.Request) *shared.Reply {
	body := shared.BodyFromContext(r.Context())

	tx, err := domain.NewTransaction(
		body.String("detail"),
		domain.TransactionStatus(body.String("status")),
		bodyUUID(body, "client"),
	)
	if err != nil {
		return invalid(err)
	}
	if err := h.transactions.Create(r.Context(), tx); err != nil {
		return h.opts.storeFailure(err)
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("transaction created",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("status", string(tx.Status)))
	return shared.OK(shared.Data{"transaction": tx})
}

// Update handles PUT /transaction/{id}. Every field is replaced.
func (h *TransactionHandler) Update(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrTransactionNotFound)
	}
	body := shared.BodyFromContext(r.Context())

	tx := &domain.Transaction{
		ID:       id,
		Detail:   strings.TrimSpace(body.String("detail")),
		Status:   domain.TransactionStatus(body.String("status")),
		ClientID: bodyUUID(body, "client"),
	}
	if err := tx.Validate(); err != nil {
		return invalid(err)
	}

	updated, err := h.transactions.Update(r.Context(), tx)
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"transaction": updated})
}

// Delete handles DELETE /transaction/{id}. The row is removed permanently.
func (h *TransactionHandler) Delete(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrTransactionNotFound)
	}

	removed, err := h.transactions.Delete(r.Context(), id)
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"transaction": removed})
}
