// Package server wires the HTTP API together: routing, middleware and
// graceful lifecycle.
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

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/handler"
	"github.com/skarn-dev/rupture-planner/internal/logger"
	"github.com/skarn-dev/rupture-planner/internal/metrics"
	"github.com/skarn-dev/rupture-planner/internal/planner"
)

// Options configures a Server. AdminAPIKey empty means the admin routes
// are not mounted at all.
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
	DataPath       string
}

type Server struct {
	httpServer *http.Server
	provider   *catalog.Provider
	service    planner.Service
}

// NewServer builds the router and middleware stack around the planner
// service and catalog provider.
func NewServer(opts Options, provider *catalog.Provider, service planner.Service, loader catalog.Loader) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(provider))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(provider))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plan", handler.HandlePlan(service))

		// Catalog browse routes
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(provider))
			r.Get("/sinkable", handler.HandleListSinkableItems(provider))
			r.Get("/{slug}", handler.HandleGetItem(provider))
			r.Get("/{slug}/recipes", handler.HandleGetItemRecipes(provider))
			r.Get("/{slug}/usages", handler.HandleGetItemUsages(provider))
			r.Get("/{slug}/schematics", handler.HandleGetItemSchematics(provider))
		})
		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(provider))
			r.Get("/{slug}", handler.HandleGetRecipe(provider))
		})
		r.Route("/buildings", func(r chi.Router) {
			r.Get("/", handler.HandleListBuildings(provider))
			r.Get("/manufacturers", handler.HandleListManufacturers(provider))
			r.Get("/{slug}", handler.HandleGetBuilding(provider))
		})
		r.Route("/schematics", func(r chi.Router) {
			r.Get("/{slug}", handler.HandleGetSchematic(provider))
			r.Get("/{slug}/related", handler.HandleGetRelatedSchematics(provider))
		})
		r.Route("/corporations", func(r chi.Router) {
			r.Get("/", handler.HandleListCorporations(provider))
			r.Get("/{slug}", handler.HandleGetCorporation(provider))
		})
		r.Get("/resources", handler.HandleListResources(provider))

		// Admin routes, only mounted when a key is configured
		if opts.AdminAPIKey != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(AdminAuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector))
				r.Post("/reload", handler.HandleReloadCatalog(loader, provider, opts.DataPath))
			})
		}
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		provider: provider,
		service:  service,
	}
}

// Handler exposes the router, mainly for tests.
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
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
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
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

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
