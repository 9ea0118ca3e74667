// Package scan turns a user's scan request into background jobs, one per
// active monitored email. Jobs are unique per email so repeated requests and
// concurrent users collapse into a single queue entry.
package scan

import (
	"context"
	"fmt"
	"time"

	"breachwatch/internal/config"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/intel"
	"breachwatch/pkg/storage"

	"github.com/google/uuid"
)

// Receipt reports what a scan request resulted in.
type Receipt struct {
	// Emails is the number of active monitored emails covered by the request.
	Emails int `json:"emails"`
	// Enqueued is how many new jobs were actually inserted; the rest were
	// deduplicated against jobs already in flight.
	Enqueued int `json:"enqueued"`
	// NeedsKey is true when no provider credential is configured, so the
	// enqueued scans will fall back to cached results only.
	NeedsKey bool `json:"needsKey"`
}

// Options configure how scan jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a scan job before marking it failed.
	MaxAttempts int
	// UniquePeriod is the lookback window within which duplicate jobs for the
	// same email are skipped.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Scan.MaxAttempts,
		UniquePeriod: cfg.Scan.UniquePeriod,
	}
}

//go:generate mockgen -package mockscan -source=scan.go -destination=mock/mockscan.go Scans
type Scans interface {
	// EnqueueUserScans inserts one scan job per active monitored email of the
	// user. Jobs already queued for an email are skipped, not duplicated.
	EnqueueUserScans(ctx context.Context, userID domain.UserID) (*Receipt, error)
}

// scans is the concrete implementation of the Scans interface.
type scans struct {
	options Options
	storage storage.Storage
	client  intel.Client
}

func (s scans) EnqueueUserScans(ctx context.Context, userID domain.UserID) (*Receipt, error) {
	receipt := &Receipt{NeedsKey: !s.client.HasCredential()}
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		emails, err := tx.ActiveMonitoredEmails(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not list active monitored emails: %w", err)
		}
		receipt.Emails = len(emails)

		for _, email := range emails {
			added, err := tx.AddJob(ctx, JobArgs{
				Email:           email.Email,
				UserID:          uuid.UUID(email.UserID),
				EmailID:         uuid.UUID(email.ID),
				maxAttempts:     s.options.MaxAttempts,
				uniqueJobPeriod: s.options.UniquePeriod,
			}, nil)
			if err != nil {
				return fmt.Errorf("could not add scan job: %w", err)
			}
			if added {
				receipt.Enqueued++
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue scans: %w", err)
	}

	return receipt, nil
}

// New creates a Scans instance backed by the provided storage and configured
// with the given options. The intel client is only consulted for whether a
// provider credential is present.
func New(storage storage.Storage, client intel.Client, options Options) Scans {
	return &scans{
		options: options,
		storage: storage,
		client:  client,
	}
}
