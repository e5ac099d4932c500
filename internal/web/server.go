// Package web provides the HTTP server and handlers for the resource hub.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonMunkholm/resourcehub/internal/config"
	"github.com/JonMunkholm/resourcehub/internal/core"
	"github.com/JonMunkholm/resourcehub/internal/metrics"
	mw "github.com/JonMunkholm/resourcehub/internal/web/middleware"
)

// Server is the HTTP server for the resource hub.
type Server struct {
	service  *core.Service
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
	limiters []*rateLimiter
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
	if s.cfg.Metrics.Enabled {
		s.router.Use(metrics.Middleware())
	}
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Security hardening
	s.router.Use(securityHeaders(s.cfg.Security))

	if s.cfg.Rate.Enabled {
		limiter := s.newLimiter(s.cfg.Rate.RequestsPerMinute, s.cfg.Rate.Burst)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	reload := func(r chi.Router) chi.Router { return r }
	if s.cfg.Rate.Enabled {
		limiter := s.newLimiter(s.cfg.Rate.ReloadPerMinute, 1)
		reload = func(r chi.Router) chi.Router { return r.With(limiter.middleware) }
	}

	// Pages
	s.router.Get("/", s.handlePage)
	reload(s.router).Post("/reload", s.handlePageReload)

	// Probes
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/readyz", s.handleReady)

	if s.cfg.Metrics.Enabled {
		s.router.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/resources", s.handleResources)
		r.Get("/facets", s.handleFacets)
		reload(r).Post("/reload", s.handleReload)
	})
}

func (s *Server) newLimiter(perMinute, burst int) *rateLimiter {
	l := newRateLimiter(perMinute, burst)
	s.limiters = append(s.limiters, l)
	return l
}

// Start begins listening for HTTP requests on the configured address.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	addr := s.cfg.Server.Addr()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server and its background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Close stops the rate limiter cleanup goroutines.
func (s *Server) Close() {
	for _, l := range s.limiters {
		l.stop()
	}
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses. The page is meant
// to be embedded, so framing is governed by CSP frame-ancestors rather than
// X-Frame-Options.
func securityHeaders(cfg config.SecurityConfig) func(http.Handler) http.Handler {
	csp := "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'; frame-ancestors " +
		frameAncestors(cfg.FrameAncestors)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			if cfg.EnableCSP {
				w.Header().Set("Content-Security-Policy", csp)
			}

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}

func frameAncestors(origins []string) string {
	if len(origins) == 0 {
		return "'none'"
	}
	return strings.Join(origins, " ")
}

