package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/WishEval_Go/internal/handler"
	"github.com/osse101/WishEval_Go/internal/logger"
	"github.com/osse101/WishEval_Go/internal/metrics"
	"github.com/osse101/WishEval_Go/internal/sse"
	"github.com/osse101/WishEval_Go/internal/wish"
)

// Config holds the HTTP settings
type Config struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxBodyBytes      int64
	SessionTTL        time.Duration
	SecureCookies     bool
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// Deps are the services the routes call into
type Deps struct {
	WishService    wish.Service
	Policy         *wish.Policy
	PolicyFile     string
	Classifier     handler.ClassifierCache
	Sessions       handler.SessionStatser
	Hub            *sse.Hub
	HealthCheckers map[string]handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Deps) *Server {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.HealthCheckers))
	r.Get("/version", handler.HandleVersion(logger.DefaultServiceName))
	r.Handle("/metrics", promhttp.Handler())

	wishHandler := handler.NewWishHandler(deps.WishService)
	sharedHandler := handler.NewSharedHandler(deps.WishService)
	policyHandler := handler.NewPolicyHandler(deps.Policy, deps.PolicyFile)
	adminCacheHandler := handler.NewAdminCacheHandler(deps.Classifier, deps.Sessions)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/policy", policyHandler.HandleGetPolicy)
		r.Get("/luck/{wishID}", sharedHandler.HandleFriendLuck)

		// Visitor routes need a session
		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(cfg.SessionTTL, cfg.SecureCookies))

			r.Route("/wish", func(r chi.Router) {
				r.Get("/", wishHandler.HandleCurrent)
				r.Post("/evaluate", wishHandler.HandleEvaluate)
				r.Post("/support", wishHandler.HandleSupport)
				r.Post("/reset", wishHandler.HandleReset)
				r.Get("/share", wishHandler.HandleShare)
				if deps.Hub != nil {
					// Live friend luck for the wish owner
					r.Get("/events", sse.Handler(deps.Hub))
				}
			})

			r.Route("/shared", func(r chi.Router) {
				r.Get("/", sharedHandler.HandleView)
				r.Post("/support", sharedHandler.HandleSupport)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload-policy", policyHandler.HandleReload)
			r.Post("/policy/active", policyHandler.HandleSetActive)
			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", adminCacheHandler.HandleGetCacheStats)
				r.Post("/purge", adminCacheHandler.HandlePurgeCache)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderLimit,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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
