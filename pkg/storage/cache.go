package storage

import (
	"context"

	"breachwatch/pkg/domain"
)

// CacheStorage persists the per-email provider lookup cache. Entries are
// keyed by normalized email; each write fully replaces the prior entry.
type CacheStorage interface {
	// EmailLookupCache fetches the cache entry for an email, or nil when no
	// lookup has ever been recorded.
	EmailLookupCache(ctx context.Context, email string) (*domain.EmailLookupCacheEntry, error)
	// UpsertEmailLookupCache writes the entry, replacing any existing row for
	// the same email in place.
	UpsertEmailLookupCache(ctx context.Context, entry domain.EmailLookupCacheEntry) error
}
