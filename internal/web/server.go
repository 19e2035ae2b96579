package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"emojihub/internal/favorites"
	"emojihub/internal/hub"
	"emojihub/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the catalog and favorites pages over a shared store.
type Server struct {
	source hub.Source
	repo   favorites.Repository
	tmpl   *template.Template

	// mu guards snap and serialises favorites load/save pairs.
	mu   sync.Mutex
	snap hub.Snapshot
}

// NewServer parses the page templates. Call Load before serving.
func NewServer(source hub.Source, repo favorites.Repository) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"glyph": glyphOf,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{source: source, repo: repo, tmpl: tmpl}, nil
}

// Load fetches the catalog once; failures are shown on the page with a retry.
func (s *Server) Load(ctx context.Context) {
	snap := hub.Load(ctx, s.source)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusFound)
	})

	// Pages
	r.Get("/catalog", s.handleCatalog)
	r.Post("/catalog/retry", s.handleRetry)
	r.Get("/favorites", s.handleFavorites)
	r.Post("/favorites/toggle", s.handleToggle)
	r.Post("/favorites/remove", s.handleRemove)
	r.Get("/favorites/clear", s.handleClearConfirm)
	r.Post("/favorites/clear", s.handleClear)

	// API Endpoints
	r.Get("/api/emojis", s.handleAPIEmojis)
	r.Get("/api/options", s.handleAPIOptions)
	r.Get("/api/favorites", s.handleAPIFavorites)

	return r
}

// StartServer serves until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	fmt.Printf("Starting emojihub web server at http://%s\n", host)
	fmt.Printf("Go to http://%s/catalog in your browser.\n", host)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) snapshot() hub.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func glyphOf(e model.Emoji) string {
	if g := model.Glyph(e); g != "" {
		return g
	}
	return model.IconMissing
}
