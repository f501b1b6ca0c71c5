// Package server exposes the calculator over a JSON HTTP API.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/logging"
)

// Config is the listener configuration. It is safe to log: LogValue never
// includes the token.
type Config struct {
	Addr     string `json:"addr"`
	APIToken string `json:"api_token"`
}

// LogValue reports only whether auth is enabled.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", c.Addr),
		slog.Bool("auth", c.APIToken != ""),
	)
}

type Server struct {
	router   *chi.Mux
	catalog  *catalog.Catalog
	apiToken string
}

type Options func(*Server)

// WithAPIToken requires "Authorization: Bearer <token>" on /api routes.
func WithAPIToken(token string) Options {
	return func(s *Server) {
		s.apiToken = token
	}
}

// New builds the router over cat. cat is read-only from here on.
func New(cat *catalog.Catalog, opts ...Options) *Server {
	r := chi.NewRouter()
	s := &Server{
		router:  r,
		catalog: cat,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		if s.apiToken != "" {
			r.Use(bearerAuth(s.apiToken))
		}
		r.Get("/vendors", s.listVendors)
		r.Get("/vendors/{id}", s.getVendor)
		r.Get("/industries", s.listIndustries)
		r.Get("/frameworks", s.listFrameworks)
		r.Post("/tco", s.calculateTCO)
		r.Post("/compare", s.compare)
		r.Post("/recommend", s.recommend)
		r.Post("/sensitivity", s.sensitivity)
		r.Post("/export/{format}", s.export)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs h on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, cfg Config, h http.Handler) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Default().Info("Starting HTTP server", "config", cfg)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- goerr.Wrap(err, "failed to start server", goerr.V("addr", cfg.Addr))
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Default().Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
		return nil
	}
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// bearerAuth rejects requests without the configured token.
func bearerAuth(token string) func(http.Handler) http.Handler {
	want := []byte("Bearer " + token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(strings.TrimSpace(r.Header.Get("Authorization")))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="tcocompare"`)
				writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
