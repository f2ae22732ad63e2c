package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"netanyaRelay/internal/api/handlers/http/public"
	"netanyaRelay/internal/api/handlers/http/system"
	"netanyaRelay/internal/config"
	"netanyaRelay/internal/middleware"
	"netanyaRelay/internal/service"
)

const visitorTTL = 10 * time.Minute

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	publicHandler := public.NewHandler(logger, svc.Incidents)
	systemHandler := system.NewHandler(logger, svc.Health)

	r := InitRouter(ctx, cfg, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

// MaxBodyBytes leaves room for base64 expansion of the largest allowed
// attachment plus the rest of the form.
func MaxBodyBytes(maxAttachment int64) int64 {
	return maxAttachment*4/3 + 1<<20
}

func InitRouter(ctx context.Context, cfg *config.Config, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Correlation-ID", "X-API-Version"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/incidents", func(ir chi.Router) {
			ir.Use(middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, visitorTTL, logger))
			ir.Use(middleware.MaxBody(MaxBodyBytes(cfg.Attachment.MaxBytes)))
			ir.Post("/submit", publicHandler.SubmitIncident)
		})

		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/health/downstream", systemHandler.DownstreamHealth)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		Handler:           s.router,
		ReadTimeout:       s.cfg.Http.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.Http.WriteTimeout,
		IdleTimeout:       30 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
