package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodyBytes caps how much of a request body is read.
const maxBodyBytes = 1 << 20

// ErrUndecodableBody is returned when a body is neither a JSON object nor a
// form-encoded payload.
var ErrUndecodableBody = errors.New("request body could not be decoded")

// Body is a decoded request body keyed by field name. JSON values keep their
// decoded types; form values are strings.
type Body map[string]any

// String returns the field as a string, or "" when absent or not a string.
func (b Body) String(field string) string {
	s, _ := b[field].(string)
	return s
}

// DecodeBody decodes a JSON object or an application/x-www-form-urlencoded
// body. An empty body decodes to an empty Body.
func DecodeBody(r *http.Request) (Body, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return Body{}, nil
	}

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid content type: %v", ErrUndecodableBody, err)
		}
		mediaType = parsed
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndecodableBody, err)
		}
		body := make(Body, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				body[key] = values[0]
			}
		}
		return body, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableBody, err)
	}
	if len(raw) == 0 {
		return Body{}, nil
	}

	var body Body
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableBody, err)
	}
	if body == nil {
		body = Body{}
	}
	return body, nil
}
