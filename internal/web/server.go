package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/hana-site/internal/page"
)

// Config holds server configuration.
type Config struct {
	Port              int
	SiteName          string
	AllowAllOrigins   bool // allow all CORS origins on /api (dev mode)
	ReadHeaderTimeout time.Duration
	ScrollThreshold   int
	AssetsDir         string   // directory holding images/ and static/
	AssetIncludes     []string // globs relative to AssetsDir that may be served
}

// Server serves the Hana Ramen page, its JSON API and the live view channel.
type Server struct {
	cfg        Config
	renderer   *page.Renderer
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. logger may be nil, in which case slog.Default is used.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 10 * time.Second
	}

	renderer, err := page.New(page.Options{
		SiteName:        cfg.SiteName,
		Mode:            page.ModeServer,
		ScrollThreshold: cfg.ScrollThreshold,
		Live:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating page renderer: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The live channel outlives any request timeout.
	r.Get("/ws/view", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handleIndex)
		r.Post("/reserve", s.handleReserve)
		r.Get("/site.css", handleStylesheet)

		assets := s.assetHandler()
		r.Handle("/images/*", assets)
		r.Handle("/static/*", assets)

		r.Route("/api", func(r chi.Router) {
			corsOpts := cors.Options{
				AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
				AllowedMethods:   []string{"GET", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: false,
				MaxAge:           300,
			}
			if s.cfg.AllowAllOrigins {
				corsOpts.AllowedOrigins = []string{"*"}
			}
			r.Use(cors.Handler(corsOpts))
			registerAPIRoutes(r)
		})
	})

	return r
}

// Router returns the chi router, mostly for tests.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown, including one that happens before Start.
func (s *Server) Start() error {
	s.logger.Info("hana site listening", "addr", s.httpServer.Addr, "assets", s.cfg.AssetsDir)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
