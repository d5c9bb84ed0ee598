package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/novelreader-backend/pkg/ctxutil"
)

func TestRequestID_ReuseIncoming(t *testing.T) {
	t.Parallel()
	incomingID := uuid.New().String()

	var gotID string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil)
	req.Header.Set(RequestIDHeader, incomingID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, incomingID, gotID)
	assert.Equal(t, incomingID, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	_, err := uuid.Parse(gotID)
	assert.NoError(t, err, "generated id should be a UUID: %q", gotID)
	assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trustProxy bool
		want       string
	}{
		{"remote addr", "198.51.100.4:5123", "", false, "198.51.100.4"},
		{"forwarded ignored without trust", "198.51.100.4:5123", "203.0.113.9", false, "198.51.100.4"},
		{"forwarded first hop", "10.0.0.2:80", "203.0.113.9, 10.0.0.1", true, "203.0.113.9"},
		{"malformed remote addr", "unix-socket", "", false, "unix-socket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := ClientIP(tt.trustProxy)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ctxutil.ClientIPFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}
