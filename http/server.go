package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/siteforge"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultRequestTimeout bounds one request end to end. Site synthesis calls
// can legitimately take minutes.
const DefaultRequestTimeout = 5 * time.Minute

// Server exposes the scrape-analyze-generate workflow over HTTP.
type Server struct {
	http *http.Server

	Addr   string
	Logger *slog.Logger

	Scraper   siteforge.Scraper
	Generator siteforge.SiteGenerator
	Gateway   *siteforge.Gateway
	Config    *siteforge.ConfigService
	Projects  siteforge.ProjectService
	Publisher siteforge.PublishService
	Exporter  siteforge.Exporter
}

// NewServer creates a Server with defaults; callers assign dependencies
// before Open.
func NewServer() *Server {
	return &Server{Logger: slog.Default()}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultRequestTimeout))
	r.Use(s.accessLog)

	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", s.handleScrape)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/recreate", s.handleRecreate)
		r.Post("/modify", s.handleModify)
		r.Post("/outreach", s.handleOutreach)
		r.Post("/export", s.handleExport)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", s.handleSaveProject)
			r.Get("/", s.handleListProjects)
			r.Get("/{projectID}", s.handleGetProject)
			r.Delete("/{projectID}", s.handleDeleteProject)
		})

		r.Post("/host", s.handleHost)
		r.Get("/sites", s.handleListSites)

		r.Route("/config", func(r chi.Router) {
			r.Get("/", s.handleGetConfig)
			r.Post("/", s.handleUpdateConfig)
			r.Post("/test", s.handleTestConfig)
		})
	})

	r.Get("/site/{siteID}", s.handleViewSite)

	return r
}

// Open starts listening on Addr. It blocks until the listener fails or the
// server is closed.
func (s *Server) Open() error {
	s.http = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      DefaultRequestTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.Logger.Info("http server listening", "addr", s.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	s.Logger.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}

// statusWriter captures status code and bytes written for access logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// accessLog logs one line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(ww, r)

		s.Logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"bytes", ww.bytes,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
