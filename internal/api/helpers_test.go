package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/api/middleware"
	"github.com/phrazzld/ledger-api/internal/api/validation"
	"github.com/phrazzld/ledger-api/internal/config"
	"github.com/phrazzld/ledger-api/internal/mocks"
	"github.com/phrazzld/ledger-api/internal/service"
	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-test-secret-with-at-least-32-characters"

// fixture wires the route table to mock stores and a real token service.
type fixture struct {
	users        *mocks.MockUserStore
	hasher       *mocks.MockPasswordHasher
	categories   *mocks.MockCategoryStore
	clients      *mocks.MockClientStore
	transactions *mocks.MockTransactionStore
	tokens       auth.TokenService
	opts         Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenService(config.AuthConfig{JWTSecret: testSecret, BcryptCost: 4})
	require.NoError(t, err)

	return &fixture{
		users:        &mocks.MockUserStore{},
		hasher:       &mocks.MockPasswordHasher{},
		categories:   &mocks.MockCategoryStore{},
		clients:      &mocks.MockClientStore{},
		transactions: &mocks.MockTransactionStore{},
		tokens:       tokens,
	}
}

func (f *fixture) router(t *testing.T) http.Handler {
	t.Helper()

	users, err := service.NewUserService(f.users, f.hasher, f.tokens, nil)
	require.NoError(t, err)

	h := Handlers{
		Users:        NewUserHandler(users, f.opts, nil),
		Categories:   NewCategoryHandler(f.categories, f.opts, nil),
		Clients:      NewClientHandler(f.clients, f.transactions, f.opts, nil),
		Transactions: NewTransactionHandler(f.transactions, f.opts, nil),
	}

	r := chi.NewRouter()
	Mount(r, Routes(h), validation.New(), middleware.NewAuthMiddleware(f.tokens, nil), nil)
	return r
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	token, err := f.tokens.Issue(context.Background(), uuid.New(), "owner@example.com")
	require.NoError(t, err)
	return token
}

// response is a decoded envelope whose data is kept raw for per-test decoding.
type response struct {
	Code   int                        `json:"-"`
	Status string                     `json:"status"`
	Data   map[string]json.RawMessage `json:"data"`
}

// errorMessage returns data.error when it is a plain message.
func (r response) errorMessage(t *testing.T) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(r.Data["error"], &msg))
	return msg
}

// violations returns data.error when it is a violation list.
func (r response) violations(t *testing.T) []validation.Violation {
	t.Helper()
	var v []validation.Violation
	require.NoError(t, json.Unmarshal(r.Data["error"], &v))
	return v
}

func (r response) decode(t *testing.T, key string, into any) {
	t.Helper()
	raw, ok := r.Data[key]
	require.True(t, ok, "data has no %q key", key)
	require.NoError(t, json.Unmarshal(raw, into))
}

// do sends a JSON request. body may be nil, a string sent verbatim, or a
// value to marshal.
func do(t *testing.T, h http.Handler, method, path, token string, body any) response {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	return serve(t, h, req)
}

// doForm sends a form-encoded request.
func doForm(t *testing.T, h http.Handler, method, path, token string, form url.Values) response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	return serve(t, h, req)
}

func serve(t *testing.T, h http.Handler, req *http.Request) response {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := response{Code: rec.Code}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}
