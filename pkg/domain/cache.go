package domain

import (
	"encoding/json"
	"time"
)

// EmailLookupCacheEntry is the locally persisted result of the last provider
// lookup for an email. There is exactly one entry per email; a fresh lookup
// replaces the prior entry in place, so CheckedAt is monotonically
// non-decreasing.
type EmailLookupCacheEntry struct {
	// Email is the normalized address the entry is keyed by.
	Email string `json:"email"`
	// Breaches is the raw breach list from the last successful lookup. An
	// empty list is a valid cached answer ("no breaches known").
	Breaches []json.RawMessage `json:"breaches"`
	// CheckedAt is when the provider was last queried for this email.
	CheckedAt time.Time `json:"checkedAt"`
}

// Fresh reports whether the entry is recent enough to serve as a keyless
// fallback, given the staleness window.
func (e EmailLookupCacheEntry) Fresh(now time.Time, staleAfter time.Duration) bool {
	return !e.CheckedAt.IsZero() && now.Sub(e.CheckedAt) <= staleAfter
}
