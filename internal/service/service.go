package service

import (
	"context"

	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/dispatch"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/formdata"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type AttachmentProcessor interface {
	Process(att *domain.ImageAttachment) (*attachment.MultipartFile, error)
}

type RequestBuilder interface {
	Build(payload domain.DownstreamPayload, files ...*attachment.MultipartFile) (*formdata.Request, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, correlationID string, req *formdata.Request) (*dispatch.Outcome, error)
}

type HealthCache interface {
	Get(ctx context.Context) (domain.DownstreamHealth, error)
}

// Use-cases exposed to the HTTP layer.
type IncidentSubmitter interface {
	Submit(ctx context.Context, sub domain.IncidentSubmission) (domain.SubmissionResult, error)
}

type HealthReporter interface {
	Downstream(ctx context.Context) (domain.DownstreamHealth, error)
}

type Service struct {
	Incidents IncidentSubmitter
	Health    HealthReporter
}

func NewService(incidents IncidentSubmitter, health HealthReporter) *Service {
	return &Service{
		Incidents: incidents,
		Health:    health,
	}
}
