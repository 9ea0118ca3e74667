// Package intel defines the interfaces and data types used to query external
// breach-intelligence providers: the k-anonymity password-range endpoint and
// the per-email breach lookup.
package intel

import (
	"context"
	"encoding/json"
)

// RangeEntry is one record of a password-range response: a hash suffix (the
// 35 hex characters following the queried 5-character prefix) and the number
// of times the corresponding password was seen in breach corpora.
type RangeEntry struct {
	// Suffix is the hash remainder as returned by the provider. Casing is not
	// normalized; callers must compare case-insensitively.
	Suffix string
	// Count is how often the password appeared. Unparsable provider counts
	// are reported as 0.
	Count int64
}

// Client is the abstraction over a breach-intelligence provider.
//
//go:generate mockgen -package mockintel -source=interface.go -destination=mock/mockintel.go *
type Client interface {
	// PasswordRange queries the range endpoint with a 5-character uppercase
	// hex digest prefix and returns all known suffix/count records sharing
	// that prefix. Only the prefix ever reaches the network.
	PasswordRange(ctx context.Context, prefix string) ([]RangeEntry, error)

	// AccountBreaches returns the raw breach objects known for an email.
	// A provider "not found" is a valid answer and yields an empty slice with
	// a nil error. Invalid or expired credentials surface as
	// serrors.ErrUnauthorized; other provider failures as
	// serrors.ErrUnavailable.
	AccountBreaches(ctx context.Context, email string) ([]json.RawMessage, error)

	// HasCredential reports whether the client is configured with an API
	// credential for the account endpoint. The range endpoint needs none.
	HasCredential() bool
}
