package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMonitor(limit int) (*ClientMonitor, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	m := NewClientMonitor(limit, time.Minute)
	m.now = clock.now
	return m, clock
}

func TestClientMonitor_Allow(t *testing.T) {
	m, clock := newTestMonitor(3)

	for i := 0; i < 3; i++ {
		ok, _ := m.Allow("1.1.1.1")
		require.True(t, ok, "request %d", i+1)
	}

	clock.advance(20 * time.Second)
	ok, retry := m.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	// other clients have their own budget
	ok, _ = m.Allow("2.2.2.2")
	assert.True(t, ok)

	clock.advance(40 * time.Second)
	ok, _ = m.Allow("1.1.1.1")
	assert.True(t, ok, "window should reopen")

	requests, _ := m.counts("1.1.1.1")
	assert.Equal(t, 1, requests)
}

func TestClientMonitor_RecordFailedAuth(t *testing.T) {
	m, clock := newTestMonitor(10)

	assert.Equal(t, 1, m.RecordFailedAuth("1.1.1.1"))
	assert.Equal(t, 2, m.RecordFailedAuth("1.1.1.1"))
	assert.Equal(t, 1, m.RecordFailedAuth("3.3.3.3"))

	clock.advance(time.Minute)
	assert.Equal(t, 1, m.RecordFailedAuth("1.1.1.1"))
}

func TestClientMonitor_CountsUnknownClient(t *testing.T) {
	m, _ := newTestMonitor(10)
	requests, failed := m.counts("9.9.9.9")
	assert.Zero(t, requests)
	assert.Zero(t, failed)
}

func TestRateLimitMiddleware(t *testing.T) {
	m, _ := newTestMonitor(2)
	handler := RateLimitMiddleware(nil, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/garden", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get(HeaderRetryAfter))

	requests, _ := m.counts("10.0.0.1")
	assert.Equal(t, 3, requests)
}

func TestRateLimitMiddleware_UsesForwardedIPFromTrustedProxy(t *testing.T) {
	m, _ := newTestMonitor(1)
	handler := RateLimitMiddleware([]string{"192.168.1.1"}, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, client := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "192.168.1.1:443"
		req.Header.Set(HeaderForwardedFor, client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, client)
	}

	requests, _ := m.counts("192.168.1.1")
	assert.Zero(t, requests)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path         string
		cacheControl string
	}{
		{"/healthz", ""},
		{"/api/v1/garden", "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
			assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
			assert.Equal(t, tt.cacheControl, rec.Header().Get("Cache-Control"))
		})
	}
}
