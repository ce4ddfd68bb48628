package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// SessionContext tags the request context with the garden session so every
// log line written while serving it carries session_id.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID := extractSessionID(r); sessionID != EmptySessionID {
			r = r.WithContext(logger.WithSessionID(r.Context(), sessionID))
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionID retrieves the garden session from context
func GetSessionID(ctx context.Context) string {
	if id, ok := logger.SessionIDFromContext(ctx); ok {
		return id
	}
	return EmptySessionID
}

// extractSessionID looks in the query string first, then in a JSON body.
// The body is restored so handlers can decode it again.
func extractSessionID(r *http.Request) string {
	if id := r.URL.Query().Get(QueryParamSessionID); id != EmptySessionID {
		return id
	}

	if r.Body == nil || r.Body == http.NoBody || !isJSON(r) {
		return EmptySessionID
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, MaxPeekBytes+1))
	rest := r.Body
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(data), rest), Closer: rest}
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgBodyPeekFailed, "error", err)
		return EmptySessionID
	}
	if len(data) > MaxPeekBytes {
		return EmptySessionID
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return EmptySessionID
	}
	var id string
	if raw, ok := body[BodyFieldSessionID]; ok && json.Unmarshal(raw, &id) == nil {
		return id
	}
	return EmptySessionID
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "application/json")
}

type readCloser struct {
	io.Reader
	io.Closer
}
