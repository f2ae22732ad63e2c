package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/downstream"
	"netanyaRelay/internal/validation"
)

// ErrorResponse is returned for input that never reached the ticketing
// service.
type ErrorResponse struct {
	Error         string                 `json:"error"`
	Details       []validation.Violation `json:"details,omitempty"`
	CorrelationID string                 `json:"correlation_id"`
	Timestamp     time.Time              `json:"timestamp"`
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, res domain.SubmissionResult, err error) {
	l := h.log(r).With(slog.String("correlation_id", res.CorrelationID))

	var (
		verr *validation.ValidationError
		aerr *attachment.Error
		derr *downstream.Error
	)
	switch {
	case errors.As(err, &verr):
		h.writeError(w, http.StatusUnprocessableEntity, res.CorrelationID, res.Message, verr.Violations)

	case errors.As(err, &aerr):
		status := http.StatusUnprocessableEntity
		if aerr.Reason == attachment.ReasonTooLarge {
			status = http.StatusRequestEntityTooLarge
		}
		h.writeError(w, status, res.CorrelationID, res.Message, []validation.Violation{{
			Field:   "extra_files",
			Message: res.Message,
			Kind:    validation.Kind(aerr.Reason),
		}})

	case errors.As(err, &derr):
		status := http.StatusBadGateway
		if derr.Timeout() {
			status = http.StatusGatewayTimeout
		}
		l.Error("downstream failure",
			slog.String("kind", string(derr.Kind)),
			slog.Int("status_code", derr.StatusCode),
		)
		w.Header().Set("X-Correlation-ID", res.CorrelationID)
		h.writeJSON(w, status, res)

	default:
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		w.Header().Set("X-Correlation-ID", res.CorrelationID)
		h.writeJSON(w, http.StatusInternalServerError, res)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, correlationID, msg string, details []validation.Violation) {
	w.Header().Set("X-Correlation-ID", correlationID)
	h.writeJSON(w, code, ErrorResponse{
		Error:         msg,
		Details:       details,
		CorrelationID: correlationID,
		Timestamp:     h.now().UTC(),
	})
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
