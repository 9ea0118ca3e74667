// Package lookup queries the breach intelligence provider for the breaches a
// given email appears in, gated on credential presence and backed by a
// one-row-per-email local cache.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"breachwatch/internal/config"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/intel"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/ratelimit"
	"breachwatch/pkg/serrors"
	"breachwatch/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the cache policy of the lookup service.
type Options struct {
	// CacheStaleAfter is how long a cached lookup result may serve as the
	// keyless fallback before it is considered too old to show.
	CacheStaleAfter time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CacheStaleAfter: cfg.Intel.CacheStaleAfter,
	}
}

// lookup is the concrete implementation of the Lookup interface.
type lookup struct {
	options Options
	storage storage.Storage
	client  intel.Client
	limiter *ratelimit.Limiter

	now func() time.Time
}

// Breaches implements the credential-gating and cache policy:
//
// Without a credential the provider is never queried. A fresh-enough cache
// entry is returned as-is, anything older degrades to an empty list; either
// way NeedsKey is set so the caller can surface the caveat.
//
// With a credential the provider is queried through the rate limiter and the
// cache entry for the email is replaced with the new result. An invalid
// credential flips NeedsKey; any other provider failure is logged and yields
// an empty result.
func (l lookup) Breaches(ctx context.Context, email string) (*Result, error) {
	email = domain.NormalizeEmail(email)

	if !l.client.HasCredential() {
		return l.fromCache(ctx, email), nil
	}

	if err := l.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("could not acquire rate limit slot: %w", err)
	}

	checkedAt := l.now()
	breaches, err := l.client.AccountBreaches(ctx, email)
	if err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			logger.Warn(ctx, "breach provider rejected credential", zap.Error(err))

			return &Result{NeedsKey: true}, nil
		}

		logger.Warn(ctx, "breach lookup failed, returning empty result", zap.Error(err))

		return &Result{}, nil
	}

	// best-effort: the lookup already succeeded, a failed cache write only
	// costs a future keyless fallback
	if err := l.storage.UpsertEmailLookupCache(ctx, domain.EmailLookupCacheEntry{
		Email:     email,
		Breaches:  breaches,
		CheckedAt: checkedAt,
	}); err != nil {
		logger.Warn(ctx, "could not persist breach lookup cache entry", zap.Error(err))
	}

	return &Result{
		Breaches:  breaches,
		CheckedAt: checkedAt,
	}, nil
}

func (l lookup) fromCache(ctx context.Context, email string) *Result {
	entry, err := l.storage.EmailLookupCache(ctx, email)
	if err != nil {
		logger.Warn(ctx, "could not read breach lookup cache", zap.Error(err))

		return &Result{NeedsKey: true}
	}

	if entry == nil || !entry.Fresh(l.now(), l.options.CacheStaleAfter) {
		return &Result{NeedsKey: true}
	}

	return &Result{
		Breaches:  entry.Breaches,
		CheckedAt: entry.CheckedAt,
		FromCache: true,
		NeedsKey:  true,
	}
}

// New creates a Lookup backed by the given storage, provider client and rate
// limiter.
func New(storage storage.Storage, client intel.Client, limiter *ratelimit.Limiter, options Options) Lookup {
	return &lookup{
		options: options,
		storage: storage,
		client:  client,
		limiter: limiter,
		now:     time.Now,
	}
}
