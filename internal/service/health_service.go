package service

import (
	"context"
	"errors"

	"netanyaRelay/internal/dispatch"
	"netanyaRelay/internal/domain"
	"netanyaRelay/pkg/e"
)

type HealthService struct {
	cache HealthCache
	mode  string
}

func NewHealthService(cache HealthCache, mode string) *HealthService {
	return &HealthService{cache: cache, mode: mode}
}

// Downstream returns the last probe result. A missing or expired entry is
// reported as unknown rather than an error.
func (s *HealthService) Downstream(ctx context.Context) (domain.DownstreamHealth, error) {
	h, err := s.cache.Get(ctx)
	if errors.Is(err, e.ErrCacheMiss) {
		status := domain.HealthUnknown
		if s.mode == string(dispatch.ModeSimulated) {
			status = domain.HealthSimulated
		}
		return domain.DownstreamHealth{Status: status, Mode: s.mode}, nil
	}
	if err != nil {
		return domain.DownstreamHealth{}, e.Wrap("read downstream health", err)
	}
	return h, nil
}
