package service

import (
	"context"
	"errors"
	"log/slog"

	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/transform"
	"netanyaRelay/internal/validation"
	"netanyaRelay/pkg/e"
)

// IncidentService runs one submission through validation, attachment
// handling, payload mapping, form building and dispatch. It holds no
// per-request state and is safe for concurrent use.
type IncidentService struct {
	logger     *slog.Logger
	ids        IDGenerator
	files      AttachmentProcessor
	builder    RequestBuilder
	dispatcher Dispatcher
	normalizer Normalizer
}

func NewIncidentService(
	logger *slog.Logger,
	ids IDGenerator,
	files AttachmentProcessor,
	builder RequestBuilder,
	dispatcher Dispatcher,
	normalizer Normalizer,
) *IncidentService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &IncidentService{
		logger:     logger,
		ids:        ids,
		files:      files,
		builder:    builder,
		dispatcher: dispatcher,
		normalizer: normalizer,
	}
}

// Submit always returns a populated result carrying the correlation id. The
// error is nil on success, otherwise one of *validation.ValidationError,
// *attachment.Error, *downstream.Error or an internal error.
func (s *IncidentService) Submit(ctx context.Context, sub domain.IncidentSubmission) (domain.SubmissionResult, error) {
	correlationID := s.ids.NewID()
	log := s.logger.With(slog.String("correlation_id", correlationID))

	log.Info("submission START",
		slog.Int("category_id", sub.Category.ID),
		slog.Bool("has_file", sub.HasAttachment()),
	)

	if err := validation.Validate(&sub); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			log.Warn("submission rejected by validation", slog.Any("fields", verr.Fields()))
		} else {
			log.Error("validation failed unexpectedly", slog.Any("error", err))
		}
		return s.normalizer.Failure(correlationID, sub, err), err
	}

	file, err := s.files.Process(sub.ExtraFiles)
	if err != nil {
		log.Warn("attachment rejected", slog.String("error", err.Error()))
		return s.normalizer.Failure(correlationID, sub, err), err
	}
	if file != nil {
		log.Info("attachment accepted",
			slog.String("content_type", file.ContentType),
			slog.Int("size", len(file.Data)),
		)
	}

	payload := transform.ToPayload(sub)

	req, err := s.builder.Build(payload, file)
	if err != nil {
		err = e.Wrap("build multipart request", errors.Join(e.ErrInternal, err))
		log.Error("build request failed", slog.Any("error", err))
		return s.normalizer.Failure(correlationID, sub, err), err
	}

	outcome, err := s.dispatcher.Dispatch(ctx, correlationID, req)
	if err != nil {
		log.Error("dispatch failed", slog.String("error", err.Error()))
		return s.normalizer.Failure(correlationID, sub, err), err
	}

	result := s.normalizer.Success(correlationID, outcome, file)
	log.Info("submission END",
		slog.String("ticket_id", result.TicketID),
		slog.Bool("simulated", outcome.Simulated),
	)
	return result, nil
}
