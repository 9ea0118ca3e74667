package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmailID uniquely identifies a monitored email record.
type EmailID uuid.UUID

// MonitoredEmail is an email address a user watches for breach exposure.
// The address is stored normalized; Free-tier users never hold more than one
// active record.
type MonitoredEmail struct {
	// ID is the unique identifier of the record.
	ID EmailID `json:"id"`
	// UserID is the owning user.
	UserID UserID `json:"userId"`

	// Email is the normalized (trimmed, lowercased) address.
	Email string `json:"email"`
	// Active indicates whether the email is currently being monitored. A
	// Free-tier replacement deactivates the old record instead of deleting it.
	Active bool `json:"active"`
	// LastChecked is when a breach lookup last ran for this email. Zero value
	// means never checked.
	LastChecked time.Time `json:"lastChecked"`

	// CreatedAt is when the record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeEmail returns the canonical form of an email address used as part
// of storage keys: whitespace trimmed and everything lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
