package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/handler"
	"github.com/osse101/GardenBot_Go/internal/logger"
	"github.com/osse101/GardenBot_Go/internal/metrics"
	"github.com/osse101/GardenBot_Go/internal/middleware"
	"github.com/osse101/GardenBot_Go/internal/sse"
)

// Config holds the HTTP listener settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

type Server struct {
	httpServer    *http.Server
	gardenService garden.Service
	sseHub        *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(cfg Config, gardenService garden.Service, store handler.Pinger, sseHub *sse.Hub) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewClientMonitor(RateLimitPerWindow, RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, monitor))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	gardenHandler := handler.NewGardenHandler(gardenService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", gardenHandler.Catalog)

		// Server-Sent Events (long-lived)
		r.Get("/events", sse.Handler(sseHub))

		r.Route("/garden", func(r chi.Router) {
			r.Use(middleware.SessionContext)

			r.Get("/", gardenHandler.GetGarden)
			r.Delete("/", gardenHandler.ResetGarden)

			r.Post("/plant", gardenHandler.Plant)
			r.Post("/water", gardenHandler.Water)
			r.Post("/harvest", gardenHandler.Harvest)

			r.Post("/exchange", gardenHandler.Exchange)
			r.Post("/xp", gardenHandler.CreditXP)

			r.Route("/shop", func(r chi.Router) {
				r.Post("/seeds/buy", gardenHandler.BuySeed)
				r.Post("/gear/buy", gardenHandler.BuyGear)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		gardenService: gardenService,
		sseHub:        sseHub,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the SSE stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor an upstream request ID so traces line up across proxies
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully. Open SSE streams are closed by stopping
// the hub first so Shutdown does not wait on them until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	if s.sseHub != nil {
		s.sseHub.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
