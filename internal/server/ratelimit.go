package server

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// clientWindow counts one client's traffic within its current window
type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientMonitor tracks per-IP request budgets and failed logins. Each IP
// gets its own fixed window starting at its first request; at most
// maxClients IPs are tracked, least recently seen first out.
type ClientMonitor struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewClientMonitor allows limit requests per IP per window
func NewClientMonitor(limit int, window time.Duration) *ClientMonitor {
	return &ClientMonitor{
		clients: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, window),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// windowFor returns ip's live window, opening a new one if needed.
// Caller must hold mu.
func (m *ClientMonitor) windowFor(ip string) *clientWindow {
	now := m.now()
	if w, ok := m.clients.Get(ip); ok && now.Sub(w.start) < m.window {
		return w
	}
	w := &clientWindow{start: now}
	m.clients.Add(ip, w)
	return w
}

// Allow counts a request from ip. When the budget is spent it returns
// false and how long until the window reopens.
func (m *ClientMonitor) Allow(ip string) (bool, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.windowFor(ip)
	w.requests++
	if w.requests <= m.limit {
		return true, 0
	}

	if over := w.requests - m.limit; over == 1 || over%RateLimitLogEvery == 0 {
		logger.Warn(SecurityAlertHighRate, "ip", ip, "requests", w.requests, "window", m.window)
	}
	return false, m.window - m.now().Sub(w.start)
}

// RecordFailedAuth counts a rejected API key and returns the running total
func (m *ClientMonitor) RecordFailedAuth(ip string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.windowFor(ip)
	w.failedAuth++
	if w.failedAuth >= FailedAuthAlertThreshold {
		logger.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// counts reports ip's current window, for tests and diagnostics
func (m *ClientMonitor) counts(ip string) (requests, failedAuth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.clients.Peek(ip); ok {
		return w.requests, w.failedAuth
	}
	return 0, 0
}

// RateLimitMiddleware rejects clients over budget with 429 and Retry-After
func RateLimitMiddleware(trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := monitor.Allow(extractIP(r, trustedProxies))
			if !ok {
				secs := int(retryAfter.Round(time.Second) / time.Second)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(1, secs)))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
