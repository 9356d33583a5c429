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

// clientView is a client as listed, with its transactions embedded.
type clientView struct {
	domain.Client
	Transactions []domain.Transaction `json:"transactions"`
}

// ClientHandler serves /client.
type ClientHandler struct {
	clients      store.ClientStore
	transactions store.TransactionStore
	opts         Options
	logger       *slog.Logger
}

// NewClientHandler creates a new ClientHandler. The transaction store is used
// to embed each listed client's transactions.
// If logger is nil, the default logger is used.
func NewClientHandler(
	clients store.ClientStore,
	transactions store.TransactionStore,
	opts Options,
	logger *slog.Logger,
) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientHandler{
		clients:      clients,
		transactions: transactions,
		opts:         opts,
		logger:       logger.With("component", "client_handler"),
	}
}

// List handles GET /client. Only active clients are returned, optionally
// narrowed by ?categoryId. Each client costs one extra transaction query.
func (h *ClientHandler) List(r *http.Request) *shared.Reply {
	ctx := r.Context()

	clients, err := h.clients.List(ctx, store.ClientFilter{
		ActiveOnly: true,
		CategoryID: queryUUID(r, "categoryId"),
		Page:       queryPage(r),
	})
	if err != nil {
		return h.opts.storeFailure(err)
	}

	views := make([]clientView, 0, len(clients))
	for _, client := range clients {
		clientID := client.ID
		txs, err := h.transactions.List(ctx, store.TransactionFilter{ClientID: &clientID})
		if err != nil {
			return h.opts.storeFailure(err)
		}
		if txs == nil {
			txs = []domain.Transaction{}
		}
		views = append(views, clientView{Client: client, Transactions: txs})
	}

	logger.FromContextOrDefault(ctx, h.logger).
		Debug("clients listed", slog.Int("count", len(views)))
	return shared.OK(shared.Data{"clients": views})
}

// Create handles POST /client. New clients are active.
func (h *ClientHandler) Create(r *http.Request) *shared.Reply {
	body := shared.BodyFromContext(r.Context())

	client, err := domain.NewClient(body.String("detail"), bodyUUID(body, "category"))
	if err != nil {
		return invalid(err)
	}
	if err := h.clients.Create(r.Context(), client); err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"client": client})
}

// Update handles PUT /client/{id}. The active flag is not touched.
func (h *ClientHandler) Update(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrClientNotFound)
	}
	body := shared.BodyFromContext(r.Context())

	client := &domain.Client{
		ID:         id,
		Detail:     strings.TrimSpace(body.String("detail")),
		CategoryID: bodyUUID(body, "category"),
	}
	if err := client.Validate(); err != nil {
		return invalid(err)
	}

	updated, err := h.clients.Update(r.Context(), client)
	if err != nil {
		return h.opts.storeFailure(err)
	}
	return shared.OK(shared.Data{"client": updated})
}

// Delete handles DELETE /client/{id}. Clients are deactivated, never removed.
func (h *ClientHandler) Delete(r *http.Request) *shared.Reply {
	id, ok := pathID(r)
	if !ok {
		return h.opts.notFound(store.ErrClientNotFound)
	}

	client, err := h.clients.Deactivate(r.Context(), id)
	if err != nil {
		return h.opts.storeFailure(err)
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("client deactivated", slog.String("client_id", id.String()))
	return shared.OK(shared.Data{"client": client})
}
