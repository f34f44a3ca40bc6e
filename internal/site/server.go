package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/brochure-dev/brochure/internal/content"
)

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port    int
	SiteDir string // directory containing the built site
	Open    bool   // open a browser once listening
}

// Server serves the built site during development, alongside a JSON
// content API backed by the same store the builder renders from and a
// live-reload websocket endpoint.
type Server struct {
	cfg        ServerConfig
	store      *content.Store
	hub        *ReloadHub
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a dev server. hub may be nil when watch mode is off.
func NewServer(cfg ServerConfig, store *content.Store, hub *ReloadHub) *Server {
	s := &Server{cfg: cfg, store: store, hub: hub}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/content/{name}", s.handleContent)

	if s.hub != nil {
		r.Get("/livereload", s.hub.Handle)
	}

	// Static files last, so the API routes win.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// handleContent serves a content document through the store, so API
// callers observe the same caching semantics as the renderers.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	w.Header().Set("Content-Type", "application/json")

	doc, ok := s.store.Get(r.Context(), name)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"content not found"}`))
		return
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		log.Printf("server: encoding %q: %v", name, err)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on the configured port and blocks until the
// server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if s.cfg.Open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", s.cfg.Port))
	}

	log.Printf("brochure dev server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
