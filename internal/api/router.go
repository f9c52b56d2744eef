// Package api exposes the read-only ops API for PitchSignals.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/pipeline"
	"github.com/pitchsignals/pitchsignals/internal/scheduler"
	"github.com/rs/zerolog/log"
)

// Server represents the API server.
type Server struct {
	router *chi.Mux
	addr   string
	server *http.Server
}

// NewServer creates a new API server.
func NewServer(repo ledger.Repository, runner *pipeline.Runner, sched *scheduler.Scheduler, addr string) *Server {
	handlers := NewHandlers(repo, runner, sched)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/picks/today", handlers.GetTodayPicks)
		r.Get("/ledger", handlers.GetLedger)
		r.Get("/stats", handlers.GetStats)

		// Admin (no auth for development)
		r.Post("/admin/run", handlers.AdminRunNow)
	})

	return &Server{
		router: r,
		addr:   addr,
	}
}

// Start starts the API server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", s.addr).Msg("Starting API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
