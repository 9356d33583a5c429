package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/store"
)

// pathID parses the {id} path parameter. A malformed id cannot match any
// record, so callers treat false as not found.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryPage reads the from and limit query parameters. Values that are not
// integers count as absent.
func queryPage(r *http.Request) store.Page {
	query := r.URL.Query()
	from, _ := strconv.Atoi(query.Get("from"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	return store.Page{Offset: from, Limit: limit}
}

// queryUUID returns the query parameter as a UUID, or nil when it is absent.
// The validation stage has already rejected malformed values.
func queryUUID(r *http.Request, key string) *uuid.UUID {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// bodyUUID returns a body field as a UUID, or uuid.Nil when it is missing or
// malformed.
func bodyUUID(body shared.Body, field string) uuid.UUID {
	id, err := uuid.Parse(body.String(field))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// invalid answers a record the domain refused to build. The validation stage
// normally catches these first.
func invalid(err error) *shared.Reply {
	return shared.Fail(http.StatusUnprocessableEntity, err.Error(), err)
}
