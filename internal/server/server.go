package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kawalpreet/folio/internal/db"
)

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	AllowAll       bool     // allow all CORS origins (dev mode)
	AllowedOrigins []string // used when AllowAll is false
	RequestTimeout time.Duration
}

// Server hosts the portfolio page and its API.
type Server struct {
	cfg        Config
	db         *db.DB
	root       chi.Router
	router     chi.Router
	origins    []string
	httpServer *http.Server
}

// New creates a server. Feature packages register their routes on Router
// or, for long-lived connections, on LiveRouter.
func New(cfg Config, database *db.DB) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	s := &Server{cfg: cfg, db: database}
	s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates the chi router with shared middleware. Regular routes
// additionally get a timeout and compression.
func (s *Server) buildRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.AllowedOrigins
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	s.origins = corsOpts.AllowedOrigins
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)

	s.root = r
	s.router = r.With(
		middleware.Timeout(s.cfg.RequestTimeout),
		middleware.Compress(5),
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.db.PingContext(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// OriginAllowed reports whether origin passes the CORS allow-list. Patterns
// may hold one "*" wildcard, as in "http://localhost:*".
func (s *Server) OriginAllowed(origin string) bool {
	origin = strings.ToLower(origin)
	for _, pattern := range s.origins {
		if matchOrigin(strings.ToLower(pattern), origin) {
			return true
		}
	}
	return false
}

func matchOrigin(pattern, origin string) bool {
	if pattern == "*" {
		return true
	}
	prefix, suffix, wild := strings.Cut(pattern, "*")
	if !wild {
		return pattern == origin
	}
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix)
}

// Router returns the router for regular request/response routes.
func (s *Server) Router() chi.Router { return s.router }

// LiveRouter returns the router for websocket routes, which skip the
// request timeout and compression.
func (s *Server) LiveRouter() chi.Router { return s.root }

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.root }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// OnShutdown registers f to run when Shutdown is called, for connections
// the HTTP server does not track itself.
func (s *Server) OnShutdown(f func()) { s.httpServer.RegisterOnShutdown(f) }

// Start begins listening. It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	log.Printf("folio server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run starts the server and shuts it down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errc
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
