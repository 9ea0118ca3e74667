// Package worker runs the background side of breach scanning: a River client
// that picks up queued scan jobs and reconciles the provider's answer into
// local findings.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"breachwatch/internal/lookup"
	"breachwatch/internal/reconcile"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the worker pool.
type Options struct {
	// MaxWorkers caps how many scan jobs run concurrently. The shared rate
	// limiter still spaces the underlying provider calls.
	MaxWorkers int
}

// Start registers the email scan worker and starts a River client on the
// given connection pool. The returned client must be stopped by the caller on
// shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store storage.Storage,
	lookupSvc lookup.Lookup,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 10
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewEmailScanWorker(store, lookupSvc, reconcile.New()))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
