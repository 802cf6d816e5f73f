// Package api provides the HTTP API server and handlers for the SHLOKA
// content service.
package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shloka-app/shloka-server/internal/config"
	"github.com/shloka-app/shloka-server/internal/ratelimit"
	"github.com/shloka-app/shloka-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       *store.Store
	services    *Services
	router      *chi.Mux
	api         huma.API
	rateLimiter *ratelimit.KeyedRateLimiter
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, services *Services, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		store:       store,
		services:    services,
		router:      chi.NewRouter(),
		rateLimiter: ratelimit.New(float64(cfg.RateLimit.RPS), cfg.RateLimit.Burst),
		logger:      logger,
	}

	s.setupMiddleware(cfg)

	humaConfig := huma.DefaultConfig("Shloka API", services.Instance.Version())
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerRootRoutes()
	s.registerEmotionRoutes()
	s.registerMoodRoutes()
	s.registerGuidanceRoutes()
	s.registerChapterRoutes()
	s.registerHealthRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-held resources (the rate limiter's sweeper).
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// setupMiddleware configures the middleware stack. chi requires all
// middleware to be registered before any route.
func (s *Server) setupMiddleware(cfg *config.Config) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(cfg.Server.CORSOrigins),
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Shloka-Client"},
		MaxAge:         300,
	}))

	s.router.Use(RateLimitMiddleware(s.rateLimiter, s.logger))
}

// splitOrigins parses the comma-separated CORS allowlist.
func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
