package worker

import (
	"context"
	"fmt"
	"time"

	"breachwatch/internal/lookup"
	"breachwatch/internal/reconcile"
	"breachwatch/internal/scan"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EmailScanWorker is a River worker that processes one queued email scan: it
// asks the lookup service for the email's current breach list and reconciles
// the answer into deduplicated local findings. Outbound provider calls are
// spaced by the rate limiter inside the lookup service, so the worker itself
// needs no request throttling.
type EmailScanWorker struct {
	river.WorkerDefaults[scan.JobArgs]

	storage    storage.Storage
	lookup     lookup.Lookup
	reconciler reconcile.Reconciler
}

// NewEmailScanWorker constructs an EmailScanWorker.
func NewEmailScanWorker(store storage.Storage,
	lookupSvc lookup.Lookup,
	reconciler reconcile.Reconciler) *EmailScanWorker {
	return &EmailScanWorker{
		storage:    store,
		lookup:     lookupSvc,
		reconciler: reconciler,
	}
}

// Work executes a single scan job. Jobs for emails that were deactivated or
// deleted after enqueueing are cancelled rather than retried. A lookup that
// needs a provider credential completes without touching any state so the
// email's last-checked time keeps reflecting actual provider checks.
func (w *EmailScanWorker) Work(ctx context.Context, job *river.Job[scan.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("email", job.Args.Email))

	email, err := w.storage.MonitoredEmailByID(ctx,
		domain.UserID(job.Args.UserID),
		domain.EmailID(job.Args.EmailID))
	if err != nil {
		return fmt.Errorf("could not fetch monitored email: %w", err)
	}
	if email == nil || !email.Active {
		logger.Info(ctx, "monitored email no longer active, cancelling scan")

		return river.JobCancel(fmt.Errorf("monitored email no longer active")) //nolint: wrapcheck
	}

	result, err := w.lookup.Breaches(ctx, email.Email)
	if err != nil {
		return fmt.Errorf("could not look up breaches: %w", err)
	}

	if result.NeedsKey {
		logger.Info(ctx, "breach lookup needs a provider credential, skipping reconcile")

		return nil
	}

	checkedAt := result.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now()
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := w.reconciler.Reconcile(ctx, tx, *email, result.Breaches, checkedAt)

		return err //nolint: wrapcheck
	}); err != nil {
		return fmt.Errorf("could not reconcile breach findings: %w", err)
	}

	logger.Info(ctx, "email scanned successfully", zap.Int("breaches", len(result.Breaches)))

	return nil
}
