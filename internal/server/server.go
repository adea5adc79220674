package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/digestview/internal/digest"
	"github.com/ziadkadry99/digestview/internal/render"
	"github.com/ziadkadry99/digestview/internal/theme"
	"github.com/ziadkadry99/digestview/internal/viewer"
)

// Config holds server configuration.
type Config struct {
	Port        int
	Title       string
	ProbeDays   int
	RecentLimit int
	AllowAll    bool // allow all CORS origins (dev mode)
	// Now overrides the clock used by viewer sessions.
	Now func() time.Time
}

// Server serves the viewer page and runs one viewer per websocket session.
type Server struct {
	cfg        Config
	source     digest.Source
	pipeline   *render.Pipeline
	router     chi.Router
	httpServer *http.Server

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a server reading digests from src.
func New(cfg Config, src digest.Source, pipeline *render.Pipeline) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Server{
		cfg:      cfg,
		source:   src,
		pipeline: pipeline,
		sessions: make(map[string]*session),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Websocket sessions outlive any request timeout.
	r.Get("/ws", s.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/", s.servePage)
		r.Get("/static/app.js", serveAsset("application/javascript", appJS))
		r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", theme.Stylesheet))
		r.Get("/api/dates", s.handleDates)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// SessionCount returns the number of open viewer sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) newViewer(surface viewer.Surface) *viewer.Viewer {
	return viewer.New(s.source, s.pipeline, surface, viewer.Options{
		ProbeDays:   s.cfg.ProbeDays,
		RecentLimit: s.cfg.RecentLimit,
		Now:         s.cfg.Now,
	})
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: digestview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes open sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
