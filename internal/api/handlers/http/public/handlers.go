package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/validation"
)

const APIVersion = "1.0"

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentSubmitter interface {
	Submit(ctx context.Context, sub domain.IncidentSubmission) (domain.SubmissionResult, error)
}

type Handler struct {
	logger    *slog.Logger
	Submitter IncidentSubmitter
	now       func() time.Time
}

func NewHandler(logger *slog.Logger, submitter IncidentSubmitter) *Handler {
	return &Handler{
		logger:    logger,
		Submitter: submitter,
		now:       time.Now,
	}
}

func (h *Handler) SubmitIncident(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-API-Version", APIVersion)

	var sub domain.IncidentSubmission

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&sub); err != nil {
		h.handleDecodeError(w, r, err)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeError(w, http.StatusBadRequest, uuid.NewString(), "invalid JSON", nil)
		return
	}

	res, err := h.Submitter.Submit(r.Context(), sub)
	if err != nil {
		h.handleError(w, r, res, err)
		return
	}

	w.Header().Set("X-Correlation-ID", res.CorrelationID)
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	id := uuid.NewString()

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.log(r).Warn("request body too large", slog.Int64("limit", tooLarge.Limit))
		h.writeError(w, http.StatusRequestEntityTooLarge, id, "request body too large", nil)
		return
	}
	if verr, ok := validation.FromDecodeError(err); ok {
		h.writeError(w, http.StatusUnprocessableEntity, id, "validation failed", verr.Violations)
		return
	}
	h.writeError(w, http.StatusBadRequest, id, "invalid JSON", nil)
}
