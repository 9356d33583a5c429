package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/ledger-api/internal/api/shared"
	"github.com/phrazzld/ledger-api/internal/api/validation"
)

// HandleFunc produces the reply for a request that passed every stage.
type HandleFunc func(r *http.Request) *shared.Reply

// Pipeline runs its stages in order and then the handler. The first stage
// to return a reply ends the request. Violations recorded by the validation
// stage are answered with RejectStatus once every stage has passed, so a bad
// token is reported before a bad body.
type Pipeline struct {
	Stages       []shared.Stage
	RejectStatus int
	Handle       HandleFunc
}

// ServeHTTP implements http.Handler.
func (p Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shared.WriteReply(w, r, p.run(r))
}

func (p Pipeline) run(r *http.Request) (reply *shared.Reply) {
	defer func() {
		if rec := recover(); rec != nil {
			reply = shared.ServerError(msgUnexpectedFailure, fmt.Errorf("panic in request pipeline: %v", rec))
		}
	}()

	for _, stage := range p.Stages {
		next, stop := stage(r)
		if stop != nil {
			return stop
		}
		r = next
	}

	if rejected := validation.Reject(r, p.RejectStatus); rejected != nil {
		return rejected
	}

	reply = p.Handle(r)
	if reply == nil {
		return shared.ServerError(msgUnexpectedFailure, errors.New("handler returned no reply"))
	}
	return reply
}
