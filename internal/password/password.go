// Package password implements the k-anonymity password exposure check. Only
// the first five characters of the password's digest ever leave the process;
// the provider answers with all known suffixes sharing that prefix and the
// match happens locally.
package password

import (
	"context"
	"fmt"
	"strings"

	"breachwatch/pkg/digest"
	"breachwatch/pkg/intel"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/ratelimit"

	"go.uber.org/zap"
)

// prefixLen is the number of digest characters disclosed to the provider.
const prefixLen = 5

// checker is the concrete implementation of the Checker interface. All
// outbound range queries pass through the shared rate limiter.
type checker struct {
	client  intel.Client
	limiter *ratelimit.Limiter
}

// ExposureCount computes the password digest, queries the range provider with
// the digest prefix and matches the remaining suffix locally. An empty
// password short-circuits to 0 with no network call. Any provider failure is
// logged and treated as "not found" so a flaky upstream never blocks the user.
func (c checker) ExposureCount(ctx context.Context, password string) (int64, error) {
	if password == "" {
		return 0, nil
	}

	hash := digest.SHA1Hex(password)
	prefix, suffix := hash[:prefixLen], hash[prefixLen:]

	if err := c.limiter.Acquire(ctx); err != nil {
		return 0, fmt.Errorf("could not acquire rate limit slot: %w", err)
	}

	entries, err := c.client.PasswordRange(ctx, prefix)
	if err != nil {
		logger.Warn(ctx, "password range query failed, treating as not exposed", zap.Error(err))

		return 0, nil
	}

	for _, entry := range entries {
		if strings.EqualFold(entry.Suffix, suffix) {
			return entry.Count, nil
		}
	}

	return 0, nil
}

// New creates a Checker backed by the given provider client and rate limiter.
func New(client intel.Client, limiter *ratelimit.Limiter) Checker {
	return &checker{
		client:  client,
		limiter: limiter,
	}
}
