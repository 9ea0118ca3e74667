package storage

import (
	"context"

	"breachwatch/pkg/domain"
)

// BreachStorage defines the operations on breach findings. The backend
// enforces uniqueness on the dedup key (user_id, email, title).
type BreachStorage interface {
	// UpsertBreachFinding inserts the finding or, when the dedup key already
	// exists, refreshes the derived fields (domain, breach date, severity,
	// critical flag, raw details). The resolution status of an existing row
	// is never modified. The stored row is returned.
	UpsertBreachFinding(ctx context.Context, finding domain.BreachFinding) (*domain.BreachFinding, error)
	// BreachFindingsByUser returns all findings for a user, open before
	// resolved, newest first within each group.
	BreachFindingsByUser(ctx context.Context, userID domain.UserID) ([]domain.BreachFinding, error)
	// ResolveBreachFinding marks one finding resolved for the given user and
	// returns the updated row, or nil when no such finding exists.
	ResolveBreachFinding(ctx context.Context, userID domain.UserID, id domain.BreachID) (*domain.BreachFinding, error)
}
