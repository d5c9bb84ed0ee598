package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/novelreader-backend/pkg/ctxutil"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "log output: %s", buf.String())
	return m
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=dragon", nil)
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	m := logLine(t, &buf)
	assert.Equal(t, "http.request", m["msg"])
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "GET", m["method"])
	assert.Equal(t, "/api/search", m["path"])
	assert.Equal(t, float64(200), m["status"])
	assert.Equal(t, "q=dragon", m["query"])
	assert.Equal(t, float64(0), m["bytes"])
	assert.Contains(t, m, "duration")
	assert.NotContains(t, m, "client_ip")
}

func TestLogger_CountsBodyBytes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,`))
		_, _ = w.Write([]byte(`"data":[]}`))
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	m := logLine(t, &buf)
	assert.Equal(t, float64(26), m["bytes"])
	assert.Equal(t, float64(200), m["status"])
	assert.NotContains(t, m, "query")
}

func TestLogger_RateLimitedAtWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil))

	assert.Equal(t, "WARN", logLine(t, &buf)["level"])
}

func TestLogger_ServerErrorAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.WriteHeader(http.StatusOK) // superfluous; first status wins
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/search", nil))

	m := logLine(t, &buf)
	assert.Equal(t, "ERROR", m["level"])
	assert.Equal(t, float64(500), m["status"])
}

func TestLogger_ClientErrorStaysInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/search", nil))

	m := logLine(t, &buf)
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, float64(400), m["status"])
}

func TestLogger_IncludesContextIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/novels", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "test-request-id-123")
	ctx = ctxutil.WithClientIP(ctx, "198.51.100.4")
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	m := logLine(t, &buf)
	assert.Equal(t, "test-request-id-123", m["request_id"])
	assert.Equal(t, "198.51.100.4", m["client_ip"])
}
