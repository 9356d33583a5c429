package shared

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        Body
		wantErr     bool
	}{
		{
			name:        "json object",
			contentType: "application/json",
			body:        `{"detail":"A","amount":3}`,
			want:        Body{"detail": "A", "amount": float64(3)},
		},
		{
			name: "json without content type",
			body: `{"detail":"A"}`,
			want: Body{"detail": "A"},
		},
		{
			name:        "form encoded",
			contentType: "application/x-www-form-urlencoded; charset=utf-8",
			body:        "detail=A&category=abc&detail=ignored",
			want:        Body{"detail": "A", "category": "abc"},
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        "",
			want:        Body{},
		},
		{
			name: "json null",
			body: `null`,
			want: Body{},
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"detail": "A",}`,
			wantErr:     true,
		},
		{
			name:    "json array",
			body:    `["detail"]`,
			wantErr: true,
		},
		{
			name:        "bad content type",
			contentType: "application/json; =",
			body:        `{}`,
			wantErr:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/category", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			got, err := DecodeBody(req)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUndecodableBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestDecodeBodyReadError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/category", errorReader{})
	_, err := DecodeBody(req)
	assert.ErrorIs(t, err, ErrUndecodableBody)
}

func TestDecodeBodyWithoutBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/category", nil)
	got, err := DecodeBody(req)
	require.NoError(t, err)
	assert.Equal(t, Body{}, got)
}

func TestBodyString(t *testing.T) {
	t.Parallel()

	body := Body{"detail": "A", "count": float64(2)}
	assert.Equal(t, "A", body.String("detail"))
	assert.Equal(t, "", body.String("count"))
	assert.Equal(t, "", body.String("missing"))
}
