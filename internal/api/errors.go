package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/store"
)

// Messages returned in error envelopes.
const (
	msgNotFound          = "not found"
	msgEmailTaken        = "Email not available"
	msgIncorrectCreds    = "Incorrect credentials"
	msgUnexpectedFailure = "unexpected error"
)

// Options tunes the status codes of envelopes that are answered with 200 by
// default.
type Options struct {
	// StrictNotFound answers a missing record with 404 and a taken email
	// with 409.
	StrictNotFound bool
}

func (o Options) notFound(err error) *shared.Reply {
	code := http.StatusOK
	if o.StrictNotFound {
		code = http.StatusNotFound
	}
	return shared.Fail(code, msgNotFound, err)
}

func (o Options) emailTaken(err error) *shared.Reply {
	code := http.StatusOK
	if o.StrictNotFound {
		code = http.StatusConflict
	}
	return shared.Fail(code, msgEmailTaken, err)
}

// storeFailure maps a store error to a reply: the not-found family gets the
// not-found envelope, anything else is a server error.
func (o Options) storeFailure(err error) *shared.Reply {
	if store.IsNotFoundError(err) {
		return o.notFound(err)
	}
	return shared.ServerError(GetSafeErrorMessage(err), err)
}

// GetSafeErrorMessage returns a summary of err that is safe to show to the
// caller. Driver messages and SQL never leak.
func GetSafeErrorMessage(err error) string {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Operation + " " + storeErr.Entity + " failed"
	}
	return msgUnexpectedFailure
}
