package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"breachwatch/internal/api"
	"breachwatch/internal/api/handler/v1handler"
	"breachwatch/internal/config"
	"breachwatch/internal/lookup"
	"breachwatch/internal/monitor"
	"breachwatch/internal/password"
	"breachwatch/internal/scan"
	"breachwatch/internal/worker"
	"breachwatch/pkg/intel/hibp"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/ratelimit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background scan workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			intelClient := hibp.New(&http.Client{Timeout: cfg.Intel.RequestTimeout}, hibp.Options{
				APIKey:          cfg.Intel.APIKey,
				UserAgent:       cfg.Intel.UserAgent,
				RangeEndpoint:   cfg.Intel.RangeEndpoint,
				AccountEndpoint: cfg.Intel.AccountEndpoint,
			})

			// one limiter spaces every outbound provider call, across the API
			// handlers and the scan workers alike.
			limiter := ratelimit.New(cfg.Intel.MinInterval)

			lookupSvc := lookup.New(strg, intelClient, limiter, lookup.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, strg, lookupSvc, worker.Options{
				MaxWorkers: cfg.Scan.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start scan workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Monitor:  monitor.New(strg),
					Password: password.New(intelClient, limiter),
					Scans:    scan.New(strg, intelClient, scan.NewOptions(cfg)),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping scan workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop scan workers", zap.Error(err))
			}
		},
	}

	return cmd
}
