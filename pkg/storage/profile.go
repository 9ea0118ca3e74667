package storage

import (
	"context"

	"breachwatch/pkg/domain"
)

// ProfileStorage reads and seeds the per-user plan tier. The plan itself is
// managed by an external billing system; this side only interprets it.
type ProfileStorage interface {
	// PlanByUser returns the user's plan tier. found is false when the user
	// has no profile row yet.
	PlanByUser(ctx context.Context, userID domain.UserID) (plan domain.PlanTier, found bool, err error)
	// PlanByUserForUpdate is PlanByUser with the profile row locked until the
	// surrounding transaction ends. Concurrent callers for the same user
	// block on the lock, so a quota check that starts with this call cannot
	// race another one. Only meaningful inside a transaction.
	PlanByUserForUpdate(ctx context.Context, userID domain.UserID) (plan domain.PlanTier, found bool, err error)
	// EnsureProfile creates a profile row with the given plan if none exists;
	// an existing row is left untouched.
	EnsureProfile(ctx context.Context, userID domain.UserID, plan domain.PlanTier) error
}
