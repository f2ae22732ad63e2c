package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"netanyaRelay/internal/api"
	"netanyaRelay/internal/attachment"
	"netanyaRelay/internal/config"
	"netanyaRelay/internal/dispatch"
	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/downstream"
	"netanyaRelay/internal/formdata"
	"netanyaRelay/internal/redis"
	"netanyaRelay/internal/service"
	"netanyaRelay/internal/workers"
	"netanyaRelay/pkg/logger"
)

type healthCache interface {
	Get(ctx context.Context) (domain.DownstreamHealth, error)
	Set(ctx context.Context, h domain.DownstreamHealth) error
}

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Probe      *workers.DownstreamProbe
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	mode := cfg.Dispatch.Mode

	var (
		sender dispatch.Sender
		prober workers.Prober
	)
	if mode == dispatch.ModeLive {
		logger.Info("Initializing downstream client", slog.String("endpoint", cfg.Dispatch.Endpoint))
		client, err := downstream.New(downstream.Config{
			Endpoint: cfg.Dispatch.Endpoint,
			Timeout:  cfg.Dispatch.Timeout,
			Proxy:    cfg.DownstreamProxy(),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init downstream client: %w", err)
		}
		sender, prober = client, client
	}

	dispatcher, err := dispatch.New(mode, sender, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init dispatcher: %w", err)
	}

	var (
		cache       healthCache
		redisClient *redis.Redis
	)
	if cfg.Redis.Addr != "" {
		logger.Info("Initializing Redis")
		redisClient, err = redis.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		cache = redis.NewHealthCache(redisClient, cfg.Health.CacheTTL)
	} else {
		logger.Info("REDIS_ADDR empty, using in-memory health cache")
		cache = redis.NewMemoryHealthCache(cfg.Health.CacheTTL)
	}

	incidents := service.NewIncidentService(
		logger,
		service.UUIDGenerator{},
		attachment.NewProcessor(attachment.Limits{
			MaxBytes:      cfg.Attachment.MaxBytes,
			SizeTolerance: cfg.Attachment.SizeTolerance,
			AllowedTypes:  cfg.Attachment.AllowedTypes,
		}),
		formdata.NewBuilder(nil),
		dispatcher,
		service.Normalizer{Debug: cfg.DebugErrors()},
	)
	health := service.NewHealthService(cache, string(mode))

	srv := service.NewService(incidents, health)

	httpServer := api.NewServer(ctx, cfg, logger, srv)
	logger.Info("Initialized server", slog.String("dispatch_mode", string(mode)))

	probe := workers.NewDownstreamProbe(prober, cache, string(mode),
		cfg.Health.ProbeInterval, cfg.Dispatch.Timeout, logger)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Probe:      probe,
		Redis:      redisClient,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return logger.SetupPrettySlog()
	case config.EnvDev:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
