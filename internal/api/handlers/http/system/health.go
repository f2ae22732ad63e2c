package system

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"netanyaRelay/internal/domain"
)

//go:generate mockgen -source=health.go -destination=mocks/mock.go
type HealthReporter interface {
	Downstream(ctx context.Context) (domain.DownstreamHealth, error)
}

type Handler struct {
	logger *slog.Logger
	Health HealthReporter
}

func NewHandler(logger *slog.Logger, health HealthReporter) *Handler {
	return &Handler{logger: logger, Health: health}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// DownstreamHealth serves the cached probe result. It never calls the
// ticketing service itself.
func (h *Handler) DownstreamHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.Health.Downstream(r.Context())
	if err != nil {
		h.logger.Error("read downstream health failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "health unavailable"})
		return
	}

	code := http.StatusOK
	if health.Status == domain.HealthDown {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, health)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
