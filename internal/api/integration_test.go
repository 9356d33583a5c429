package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/api/middleware"
	"github.com/phrazzld/ledger-api/internal/api/validation"
	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/phrazzld/ledger-api/internal/domain"
	"github.com/phrazzld/ledger-api/internal/platform/sqlstore"
	"github.com/phrazzld/ledger-api/internal/service"
	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/phrazzld/ledger-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDatabaseRouter mounts the API on a migrated test database with real
// hashing and tokens.
func newDatabaseRouter(t *testing.T) http.Handler {
	t.Helper()

	db, dialect := testdb.Open(t)

	tokens, err := auth.NewTokenService(config.AuthConfig{JWTSecret: testSecret, BcryptCost: 4})
	require.NoError(t, err)
	hasher, err := auth.NewBcryptHasher(4)
	require.NoError(t, err)

	transactions := sqlstore.NewTransactionStore(db, dialect, nil)
	users, err := service.NewUserService(sqlstore.NewUserStore(db, dialect, nil), hasher, tokens, nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	Mount(r, Routes(Handlers{
		Users:        NewUserHandler(users, Options{}, nil),
		Categories:   NewCategoryHandler(sqlstore.NewCategoryStore(db, dialect, nil), Options{}, nil),
		Clients:      NewClientHandler(sqlstore.NewClientStore(db, dialect, nil), transactions, Options{}, nil),
		Transactions: NewTransactionHandler(transactions, Options{}, nil),
	}), validation.New(), middleware.NewAuthMiddleware(tokens, nil), nil)
	return r
}

func TestAPI_EndToEnd(t *testing.T) {
	router := newDatabaseRouter(t)

	email := "owner-" + uuid.NewString()[:8] + "@example.com"
	creds := map[string]any{"email": email, "password": "s3cret-pass"}
	resp := do(t, router, http.MethodPost, "/user", "", creds)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Data["error"]))

	resp = do(t, router, http.MethodPost, "/user", "", creds)
	assert.Equal(t, "Email not available", resp.errorMessage(t))

	resp = do(t, router, http.MethodPost, "/user/auth", "", creds)
	require.Equal(t, http.StatusOK, resp.Code)
	var token string
	resp.decode(t, "token", &token)

	resp = do(t, router, http.MethodPost, "/category", token, map[string]any{"detail": "Retail"})
	require.Equal(t, http.StatusOK, resp.Code)
	var category domain.Category
	resp.decode(t, "category", &category)

	var clients [2]listedClient
	for i, detail := range []string{"Acme", "Globex"} {
		resp = do(t, router, http.MethodPost, "/client", token,
			map[string]any{"detail": detail, "category": category.ID.String()})
		require.Equal(t, http.StatusOK, resp.Code)
		resp.decode(t, "client", &clients[i])
	}

	resp = do(t, router, http.MethodPost, "/transaction", token,
		map[string]any{"detail": "invoice", "client": clients[0].ID.String()})
	require.Equal(t, http.StatusOK, resp.Code)
	var tx domain.Transaction
	resp.decode(t, "transaction", &tx)
	assert.Equal(t, domain.TransactionStatusPending, tx.Status)

	resp = do(t, router, http.MethodDelete, "/client/"+clients[1].ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, router, http.MethodGet, "/client?categoryId="+category.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []listedClient
	resp.decode(t, "clients", &listed)
	require.Len(t, listed, 1, "deactivated clients are not listed")
	assert.Equal(t, clients[0].ID, listed[0].ID)
	require.Len(t, listed[0].Transactions, 1)
	assert.Equal(t, tx.ID, listed[0].Transactions[0].ID)

	resp = do(t, router, http.MethodPut, "/transaction/"+tx.ID.String(), token,
		map[string]any{"detail": "invoice", "client": clients[0].ID.String(), "status": "settled"})
	require.Equal(t, http.StatusOK, resp.Code)
	resp.decode(t, "transaction", &tx)
	assert.Equal(t, domain.TransactionStatusSettled, tx.Status)

	resp = do(t, router, http.MethodDelete, "/category/"+category.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = do(t, router, http.MethodDelete, "/category/"+category.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "not found", resp.errorMessage(t))

	resp = do(t, router, http.MethodPut, "/client/"+uuid.NewString(), token,
		map[string]any{"detail": "Nobody", "category": category.ID.String()})
	assert.Equal(t, "not found", resp.errorMessage(t))
}
