package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// PlanTier is the subscription level governing monitoring quotas.
type PlanTier string

const (
	// PlanFree is the default tier: at most one active monitored email.
	PlanFree PlanTier = "free"
	// PlanPremium lifts the monitored-email quota entirely.
	PlanPremium PlanTier = "premium"
)

// CanAddMonitoredEmail reports whether a user on the given plan may monitor
// another email when currentActive emails are already active.
func CanAddMonitoredEmail(plan PlanTier, currentActive int) bool {
	return plan == PlanPremium || currentActive < 1
}
