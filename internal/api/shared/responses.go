package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ledger-api/internal/platform/logger"
	"github.com/phrazzld/ledger-api/internal/redact"
)

// Envelope status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is the shape of every response body.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Data is the payload of an envelope, keyed by resource name.
type Data map[string]any

// ErrorData is the payload of an error envelope. Error is either a message
// or a list of validation violations.
type ErrorData struct {
	Error any `json:"error"`
}

// Reply is a complete response produced by a pipeline stage or handler.
// Err is logged but never serialized.
type Reply struct {
	Code int
	Body Envelope
	Err  error
}

// Stage is one step of a request pipeline. It either returns the request to
// pass on, possibly with an enriched context, or a terminal Reply.
type Stage func(r *http.Request) (*http.Request, *Reply)

// OK builds a 200 reply carrying data.
func OK(data any) *Reply {
	return &Reply{
		Code: http.StatusOK,
		Body: Envelope{Status: StatusOK, Data: data},
	}
}

// Fail builds an error reply with a message payload.
func Fail(code int, message string, err error) *Reply {
	return FailWith(code, message, err)
}

// FailWith builds an error reply with an arbitrary error payload.
func FailWith(code int, payload any, err error) *Reply {
	return &Reply{
		Code: code,
		Body: Envelope{Status: StatusError, Data: ErrorData{Error: payload}},
		Err:  err,
	}
}

// ServerError builds the generic 500 reply. summary is shown to the caller
// and must not carry internal details.
func ServerError(summary string, err error) *Reply {
	return Fail(http.StatusInternalServerError, "Server error. "+summary, err)
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// WriteReply logs error replies and writes the envelope.
//
// Log level strategy:
// - 5xx errors: ERROR level
// - everything else carrying an error envelope: DEBUG level
func WriteReply(w http.ResponseWriter, r *http.Request, reply *Reply) {
	if reply.Body.Status == StatusError {
		logReply(r, reply)
	}
	RespondWithJSON(w, r, reply.Code, reply.Body)
}

func logReply(r *http.Request, reply *Reply) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", reply.Code),
	}
	if data, ok := reply.Body.Data.(ErrorData); ok {
		if message, ok := data.Error.(string); ok {
			attrs = append(attrs, slog.String("user_message", message))
		}
	}
	if reply.Err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(reply.Err)),
			slog.String("error_type", fmt.Sprintf("%T", reply.Err)))
	}

	level := slog.LevelDebug
	if reply.Code >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	// The request-scoped logger already carries trace_id.
	log, ok := logger.Lookup(r.Context())
	if !ok {
		log = slog.Default()
		attrs = append(attrs, slog.String("trace_id", GetTraceID(r.Context())))
	}
	log.LogAttrs(r.Context(), level, "API error response", attrs...)
}
