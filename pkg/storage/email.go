package storage

import (
	"context"
	"time"

	"breachwatch/pkg/domain"
)

// MonitoredEmailStorage defines the operations on monitored-email records.
// Uniqueness on (user_id, email) is enforced by the backend; upserts key on
// that pair.
type MonitoredEmailStorage interface {
	// MonitoredEmails returns all monitored emails for a user, active first,
	// newest first within each group.
	MonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error)
	// ActiveMonitoredEmails returns only the currently active records.
	ActiveMonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error)
	// MonitoredEmailByID fetches one record by ID for the given user.
	// Returns nil when not found.
	MonitoredEmailByID(ctx context.Context, userID domain.UserID, id domain.EmailID) (*domain.MonitoredEmail, error)
	// UpsertMonitoredEmail inserts the record or, when (user_id, email)
	// already exists, reactivates it. The stored row is returned.
	UpsertMonitoredEmail(ctx context.Context, email domain.MonitoredEmail) (*domain.MonitoredEmail, error)
	// DeactivateMonitoredEmails clears the active flag on all of a user's
	// active records. Used when a Free-tier user replaces their email.
	DeactivateMonitoredEmails(ctx context.Context, userID domain.UserID) error
	// TouchMonitoredEmail stamps last_checked and re-asserts the active flag
	// after a completed scan.
	TouchMonitoredEmail(ctx context.Context, id domain.EmailID, checkedAt time.Time) error
}
