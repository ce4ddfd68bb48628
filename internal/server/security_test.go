package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		apiKey         string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			apiKey:         apiKey,
			providedKey:    apiKey,
			path:           "/api/v1/garden",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Valid API Key In Query",
			apiKey:         apiKey,
			path:           "/api/v1/events?api_key=" + apiKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			apiKey:         apiKey,
			providedKey:    "wrong-key",
			path:           "/api/v1/garden",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			apiKey:         apiKey,
			path:           "/api/v1/catalog",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			apiKey:         apiKey,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			apiKey:         apiKey,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Swagger",
			apiKey:         apiKey,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Auth Disabled Without Key",
			apiKey:         "",
			path:           "/api/v1/garden",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := AuthMiddleware(tt.apiKey, nil, NewClientMonitor(RateLimitPerWindow, RateWindow))

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	monitor := NewClientMonitor(RateLimitPerWindow, RateWindow)
	handler := AuthMiddleware("secret-key", nil, monitor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/garden", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	_, failed := monitor.counts("10.0.0.7")
	assert.Equal(t, 3, failed)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{"direct connection", "203.0.113.9:4000", "", nil, "203.0.113.9"},
		{"untrusted proxy header ignored", "203.0.113.9:4000", "198.51.100.1", nil, "203.0.113.9"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:4000", "198.51.100.1, 192.0.2.4", []string{"10.0.0.1"}, "192.0.2.4"},
		{"trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/v1/garden/water", stringsReader(`{"session_id":"alice"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
