package monitor

import (
	"context"

	"breachwatch/pkg/domain"
)

// Dashboard aggregates a user's monitoring state for the overview screen.
type Dashboard struct {
	// Plan is the user's resolved plan tier.
	Plan domain.PlanTier `json:"plan"`
	// Stats are the per-status breach counts.
	Stats domain.BreachStats `json:"stats"`
	// Score is the derived exposure health score.
	Score int `json:"score"`
}

//go:generate mockgen -package mockmonitor -source=interface.go -destination=mock/mockmonitor.go *
type Monitor interface {
	// Plan resolves the user's plan tier, falling back to Free when no
	// profile exists or the read fails.
	Plan(ctx context.Context, userID domain.UserID) domain.PlanTier
	// MonitoredEmails lists the user's monitored emails, active first.
	MonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error)
	// SetMonitoredEmail adds the email to the user's monitored set. When the
	// plan quota denies the add, replaceExisting deactivates the current
	// active email(s) first; without it the call fails with a limit-reached
	// error and mutates nothing.
	SetMonitoredEmail(ctx context.Context,
		userID domain.UserID,
		email string,
		replaceExisting bool) (*domain.MonitoredEmail, error)
	// Breaches lists the user's breach findings, open before resolved.
	Breaches(ctx context.Context, userID domain.UserID) ([]domain.BreachFinding, error)
	// ResolveBreach marks one finding resolved. A rescan never reopens it.
	ResolveBreach(ctx context.Context, userID domain.UserID, id domain.BreachID) (*domain.BreachFinding, error)
	// Dashboard aggregates plan, breach counts and the exposure score.
	Dashboard(ctx context.Context, userID domain.UserID) (*Dashboard, error)
}
