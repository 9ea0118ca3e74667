package lookup

import (
	"context"
	"encoding/json"
	"time"
)

// Result is the outcome of one email breach lookup.
type Result struct {
	// Breaches is the raw provider breach list. Empty is a valid answer.
	Breaches []json.RawMessage
	// CheckedAt is when the provider was actually queried, which may be in
	// the past when the answer came from the cache.
	CheckedAt time.Time
	// FromCache is set when the answer was served from the local cache
	// instead of a live provider query.
	FromCache bool
	// NeedsKey signals that live data requires a (valid) provider credential.
	// It is a soft caveat on the result, not an error.
	NeedsKey bool
}

//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Lookup interface {
	// Breaches returns the breach entries currently known for the email,
	// applying credential-gating and cache policy. Provider failures degrade
	// to an empty result; a non-nil error only indicates cancellation.
	Breaches(ctx context.Context, email string) (*Result, error)
}
