package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123", "X-API-Key value leaked")
	assert.NotContains(t, logOutput, "Bearer mytoken", "Authorization value leaked")
	assert.Contains(t, logOutput, "TestAgent")
	assert.Contains(t, logOutput, RedactedValue)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/catalog", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		req.Header.Set(HeaderRequestID, "upstream-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "upstream-42", seen)
		assert.Equal(t, "upstream-42", rec.Header().Get(HeaderRequestID))
	})

	t.Run("oversized upstream id replaced", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		req.Header.Set(HeaderRequestID, strings.Repeat("x", 200))
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Len(t, seen, 36)
	})
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for _, path := range QuietPaths {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	assert.NotContains(t, buf.String(), LogMsgRequestStarted)
}
