// Package api provides the HTTP API server and handlers for the NicheFeed application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nichefeed/nichefeed-server/internal/service"
	"github.com/nichefeed/nichefeed-server/internal/validation"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Niche      *service.NicheService
	Feed       *service.FeedService
	Transcript *service.TranscriptService
	Watchlist  *service.WatchlistService
	User       *service.UserService
	Ingest     *service.IngestService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services       Services
	router         *chi.Mux
	logger         *slog.Logger
	validator      *validation.Validator
	requestTimeout time.Duration
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services Services, requestTimeout time.Duration, logger *slog.Logger) *Server {
	s := &Server{
		services:       services,
		router:         chi.NewRouter(),
		logger:         logger,
		validator:      validation.New(),
		requestTimeout: requestTimeout,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The mobile client is served from a different origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Per-request deadline; store and provider calls take the request
	// context, so expiry aborts in-flight I/O.
	if s.requestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.requestTimeout))
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/niches", s.handleListNiches)

		r.Route("/videos", func(r chi.Router) {
			r.With(s.requireAuth).Get("/feed", s.handleGetFeed)
			r.Get("/{videoID}/transcript", s.handleGetTranscript)
			r.Post("/refresh", s.handleRefreshVideos)
		})

		r.With(s.requireAuth).Post("/watchlists", s.handleUpsertWatchlist)

		r.Post("/users", s.handleCreateUser)
	})
}
