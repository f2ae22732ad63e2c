package workers

import (
	"context"
	"log/slog"
	"time"

	"netanyaRelay/internal/domain"
)

type Prober interface {
	Probe(ctx context.Context) (int, error)
}

type HealthStore interface {
	Set(ctx context.Context, h domain.DownstreamHealth) error
}

// DownstreamProbe periodically checks the ticketing endpoint and records the
// outcome. With a nil prober (simulated mode) it only records "simulated".
type DownstreamProbe struct {
	prober   Prober
	store    HealthStore
	mode     string
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewDownstreamProbe(prober Prober, store HealthStore, mode string, interval, timeout time.Duration, logger *slog.Logger) *DownstreamProbe {
	return &DownstreamProbe{
		prober:   prober,
		store:    store,
		mode:     mode,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With(slog.String("worker", "downstream_probe")),
		now:      time.Now,
	}
}

func (w *DownstreamProbe) Run(ctx context.Context) error {
	w.logger.Info("downstream probe STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.CheckOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("downstream probe STOPPED", slog.String("reason", ctx.Err().Error()))
			return nil
		case <-ticker.C:
			w.CheckOnce(ctx)
		}
	}
}

// CheckOnce runs a single probe and stores the result.
func (w *DownstreamProbe) CheckOnce(ctx context.Context) domain.DownstreamHealth {
	h := w.probe(ctx)

	if err := w.store.Set(ctx, h); err != nil {
		w.logger.Error("store health failed", slog.Any("error", err))
	}
	if h.Status == domain.HealthDown {
		w.logger.Warn("downstream unhealthy",
			slog.Int("status_code", h.StatusCode),
			slog.String("error", h.Error),
		)
	}
	return h
}

func (w *DownstreamProbe) probe(ctx context.Context) domain.DownstreamHealth {
	h := domain.DownstreamHealth{Mode: w.mode, CheckedAt: w.now().UTC()}
	if w.prober == nil {
		h.Status = domain.HealthSimulated
		return h
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := w.now()
	code, err := w.prober.Probe(ctx)
	h.LatencyMS = w.now().Sub(start).Milliseconds()
	h.StatusCode = code

	switch {
	case err != nil:
		h.Status = domain.HealthDown
		h.Error = err.Error()
	case code >= 500:
		h.Status = domain.HealthDown
	default:
		h.Status = domain.HealthUp
	}
	return h
}
