package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/osse101/GardenBot_Go/internal/logger"
)

// AuthMiddleware requires the API key on every path under ProtectedPrefix.
// Browsers opening an event stream cannot set headers, so the key is also
// accepted as the api_key query parameter. An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || !strings.HasPrefix(r.URL.Path, ProtectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if got == "" {
				got = r.URL.Query().Get(QueryParamAPIKey)
			}
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			failures := monitor.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", got != "",
				"failures", failures)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its last hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware sets the standard hardening headers. Garden
// API responses are per-player, so they are also marked uncacheable.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			if strings.HasPrefix(r.URL.Path, ProtectedPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}
			next.ServeHTTP(w, r)
		})
	}
}
