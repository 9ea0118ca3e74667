// Package reconcile turns raw provider breach records into canonical local
// findings. Providers disagree on field names, so each canonical field is
// resolved through an ordered list of candidate keys rather than ad hoc
// conditionals. Persisted findings dedup on (user, email, title); a rescan
// refreshes derived fields but never reverts a manual resolution.
package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/storage"

	"go.uber.org/zap"
)

// UnknownTitle is used when a provider record carries no recognizable title.
const UnknownTitle = "Unknown Breach"

// Candidate field names per canonical field, in resolution order.
var (
	titleCandidates     = []string{"Name", "Title", "breach"}
	domainCandidates    = []string{"Domain", "Site"}
	dateCandidates      = []string{"BreachDate", "breach_date"}
	verifiedCandidates  = []string{"IsVerified", "is_verified"}
	sensitiveCandidates = []string{"IsSensitive", "is_sensitive"}
	classesCandidates   = []string{"DataClasses", "data_classes"}
)

//go:generate mockgen -package mockreconcile -source=reconcile.go -destination=mock/mockreconcile.go Reconciler
type Reconciler interface {
	// Reconcile maps each raw provider record to a finding for the monitored
	// email and upserts it through store, then stamps the email's last-checked
	// time. The upserted findings are returned in input order.
	Reconcile(ctx context.Context,
		store storage.AllStorage,
		email domain.MonitoredEmail,
		raw []json.RawMessage,
		checkedAt time.Time) ([]domain.BreachFinding, error)
}

type reconciler struct{}

// MapFinding derives the canonical finding fields from one raw provider
// record. Records that fail to parse as an object still yield a finding, with
// the unknown title and the raw payload preserved in Details.
func MapFinding(email domain.MonitoredEmail, raw json.RawMessage) domain.BreachFinding {
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		record = nil
	}

	title := firstString(record, titleCandidates)
	if title == "" {
		title = UnknownTitle
	}

	severity := domain.SeverityMedium
	if firstBool(record, verifiedCandidates) || firstBool(record, sensitiveCandidates) {
		severity = domain.SeverityHigh
	}

	critical := firstBool(record, sensitiveCandidates) ||
		hasPasswordClass(firstStrings(record, classesCandidates))

	return domain.BreachFinding{
		UserID:     email.UserID,
		EmailID:    email.ID,
		Email:      email.Email,
		Title:      title,
		Domain:     firstString(record, domainCandidates),
		BreachDate: firstString(record, dateCandidates),
		Severity:   severity,
		Critical:   critical,
		Status:     domain.BreachStatusOpen,
		Details:    raw,
	}
}

func (r reconciler) Reconcile(ctx context.Context,
	store storage.AllStorage,
	email domain.MonitoredEmail,
	raw []json.RawMessage,
	checkedAt time.Time) ([]domain.BreachFinding, error) {
	findings := make([]domain.BreachFinding, 0, len(raw))
	for _, record := range raw {
		stored, err := store.UpsertBreachFinding(ctx, MapFinding(email, record))
		if err != nil {
			return nil, fmt.Errorf("could not upsert breach finding: %w", err)
		}
		findings = append(findings, *stored)
	}

	if err := store.TouchMonitoredEmail(ctx, email.ID, checkedAt); err != nil {
		// the findings themselves are already persisted
		logger.Warn(ctx, "could not stamp monitored email after reconcile",
			zap.String("email", email.Email), zap.Error(err))
	}

	return findings, nil
}

func firstString(record map[string]any, candidates []string) string {
	for _, key := range candidates {
		if v, ok := record[key].(string); ok && v != "" {
			return v
		}
	}

	return ""
}

func firstBool(record map[string]any, candidates []string) bool {
	for _, key := range candidates {
		if v, ok := record[key].(bool); ok {
			return v
		}
	}

	return false
}

func firstStrings(record map[string]any, candidates []string) []string {
	for _, key := range candidates {
		items, ok := record[key].([]any)
		if !ok {
			continue
		}

		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	}

	return nil
}

func hasPasswordClass(classes []string) bool {
	for _, class := range classes {
		if strings.Contains(strings.ToLower(class), "password") {
			return true
		}
	}

	return false
}

// New creates a Reconciler.
func New() Reconciler {
	return &reconciler{}
}
