package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"netanyaRelay/internal/components"
	"netanyaRelay/internal/config"
)

func Run() error {
	logger := components.SetupLogger(os.Getenv("ENV"))

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("load config failed", "err", err)
		return err
	}
	logger = components.SetupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}
	defer comps.ShutdownAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return comps.HttpServer.Run(gctx)
	})
	g.Go(func() error {
		return comps.Probe.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", "err", err)
		return err
	}

	logger.Info("gracefully shut down")
	return nil
}
