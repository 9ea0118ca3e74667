package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BreachID uniquely identifies a breach finding.
type BreachID uuid.UUID

// BreachStatus is the resolution state of a finding. A rescan that
// rediscovers the same breach never reverts a manual resolution.
type BreachStatus string

const (
	// BreachStatusOpen indicates the finding has not been acted upon.
	BreachStatusOpen BreachStatus = "open"
	// BreachStatusResolved indicates the user marked the finding handled.
	BreachStatusResolved BreachStatus = "resolved"
)

// BreachSeverity classifies how serious a finding is.
type BreachSeverity string

const (
	// SeverityMedium is the default classification.
	SeverityMedium BreachSeverity = "medium"
	// SeverityHigh is assigned when the provider marks the breach verified or
	// sensitive.
	SeverityHigh BreachSeverity = "high"
)

// BreachFinding is a canonical, deduplicated local record of one provider
// breach entry for one monitored email. The dedup key is
// (UserID, Email, Title): a second lookup that rediscovers the same breach
// updates the existing row instead of duplicating it.
type BreachFinding struct {
	// ID is the unique identifier of the finding.
	ID BreachID `json:"id"`
	// UserID is the owning user.
	UserID UserID `json:"userId"`
	// EmailID references the monitored email the finding belongs to.
	EmailID EmailID `json:"emailId"`

	// Email is the normalized address the breach was found for.
	Email string `json:"email"`
	// Title is the canonical breach title; "Unknown Breach" when the provider
	// supplied none.
	Title string `json:"title"`
	// Domain is the breached site's domain, when known.
	Domain string `json:"domain,omitempty"`
	// BreachDate is the provider-reported date of the breach, when known.
	BreachDate string `json:"breachDate,omitempty"`
	// Severity is the derived classification.
	Severity BreachSeverity `json:"severity"`
	// Critical is set when sensitive or password-exposing data classes were
	// involved.
	Critical bool `json:"critical"`
	// Status is the resolution state, controlled by the user.
	Status BreachStatus `json:"status"`
	// Details holds the raw provider payload the finding was derived from.
	Details json.RawMessage `json:"details,omitempty"`

	// CreatedAt is when the finding was first recorded.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the finding was last refreshed by a rescan.
	UpdatedAt time.Time `json:"updatedAt"`
}

// BreachStats aggregates a user's findings for the dashboard.
type BreachStats struct {
	MonitoredEmails int `json:"monitoredEmails"`
	Total           int `json:"totalBreaches"`
	Open            int `json:"openBreaches"`
	Resolved        int `json:"resolvedBreaches"`
}

// ExposureScore derives a 0-100 style health score from breach counts. A
// clean account sits at the 86 baseline; open findings weigh 8 points and
// resolved ones 2, with the total penalty capped so the score never drops
// below 24.
func (s BreachStats) ExposureScore() int {
	total := s.Open + s.Resolved
	if total == 0 {
		return 86
	}

	penalty := s.Open*8 + s.Resolved*2
	if penalty > 60 {
		penalty = 60
	}

	score := 86 - penalty
	if score < 24 {
		score = 24
	}

	return score
}
