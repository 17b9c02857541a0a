// Package api serves the palette sharing HTTP API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/store"
)

// Config holds server-specific configuration.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Handler serves the API routes.
type Handler struct {
	store    store.Store
	logger   hclog.Logger
	validate *validator.Validate
	maxBody  int64
}

// NewHandler creates a Handler backed by st.
func NewHandler(st store.Store, logger hclog.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}

	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("palettehex", func(fl validator.FieldLevel) bool {
		return colour.ValidHex(fl.Field().String())
	})

	return &Handler{
		store:    st,
		logger:   logger,
		validate: v,
		maxBody:  maxBodyBytes,
	}
}

// RegisterRoutes mounts the API on r.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/palettes", func(r chi.Router) {
			r.Get("/", h.ListPalettes)
			r.Post("/share", h.SharePalette)
			r.Get("/share/{shareId}", h.GetSharedPalette)
			r.Delete("/{id}", h.DeletePalette)
		})
		r.Get("/moods", h.ListMoods)
		r.Get("/moods/resolve", h.ResolveMood)
	})
}

// NewRouter builds the full middleware stack and routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)

	RegisterRoutes(r, h)
	return r
}

// NewHTTPServer creates the http.Server for cfg.
func NewHTTPServer(cfg Config, st store.Store, logger hclog.Logger) *http.Server {
	h := NewHandler(st, logger, cfg.MaxBodyBytes)
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(h),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve runs server on ln until ctx is cancelled, then shuts it down
// within shutdownTimeout.
func Serve(ctx context.Context, server *http.Server, ln net.Listener, logger hclog.Logger, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}

	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		errCh <- server.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "addr", ln.Addr().String())
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on server.Addr and calls Serve.
func ListenAndServe(ctx context.Context, server *http.Server, logger hclog.Logger, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	return Serve(ctx, server, ln, logger, shutdownTimeout)
}
