// Package monitor owns the per-user monitoring state: which emails are
// watched, how many the plan tier allows, and the lifecycle of the breach
// findings attached to them.
package monitor

import (
	"context"
	"fmt"
	"net/mail"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"
	"breachwatch/pkg/storage"

	"go.uber.org/zap"
)

// monitor is the concrete implementation of the Monitor interface.
type monitor struct {
	storage storage.Storage
}

// Plan resolves the user's plan tier. Missing profiles and read failures both
// degrade to Free so a billing-side hiccup never unlocks premium quota.
func (m monitor) Plan(ctx context.Context, userID domain.UserID) domain.PlanTier {
	plan, found, err := m.storage.PlanByUser(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "could not resolve plan, falling back to free", zap.Error(err))

		return domain.PlanFree
	}
	if !found || (plan != domain.PlanFree && plan != domain.PlanPremium) {
		return domain.PlanFree
	}

	return plan
}

func (m monitor) MonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error) {
	emails, err := m.storage.MonitoredEmails(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list monitored emails: %w", err)
	}

	return emails, nil
}

// SetMonitoredEmail adds or replaces a monitored email under the user's plan
// quota. The quota check, the deactivation of the previous email and the
// upsert run in one transaction that first locks the user's profile row, so
// concurrent adds for the same user serialize instead of racing past the
// check.
func (m monitor) SetMonitoredEmail(ctx context.Context,
	userID domain.UserID,
	email string,
	replaceExisting bool) (*domain.MonitoredEmail, error) {
	email = domain.NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
	}

	var result *domain.MonitoredEmail
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := m.lockPlanTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		active, err := tx.ActiveMonitoredEmails(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not list active monitored emails: %w", err)
		}

		// re-adding an already monitored email is always allowed; the upsert
		// reactivates the existing row
		alreadyMonitored := false
		for _, a := range active {
			if a.Email == email {
				alreadyMonitored = true

				break
			}
		}

		if !alreadyMonitored && !domain.CanAddMonitoredEmail(plan, len(active)) {
			if !replaceExisting {
				return serrors.With(serrors.ErrLimitReached,
					"plan %q allows one monitored email", plan)
			}

			if err := tx.DeactivateMonitoredEmails(ctx, userID); err != nil {
				return fmt.Errorf("could not deactivate monitored emails: %w", err)
			}
		}

		stored, err := tx.UpsertMonitoredEmail(ctx, domain.MonitoredEmail{
			UserID: userID,
			Email:  email,
			Active: true,
		})
		if err != nil {
			return fmt.Errorf("could not upsert monitored email: %w", err)
		}
		result = stored

		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (m monitor) Breaches(ctx context.Context, userID domain.UserID) ([]domain.BreachFinding, error) {
	findings, err := m.storage.BreachFindingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list breach findings: %w", err)
	}

	return findings, nil
}

func (m monitor) ResolveBreach(ctx context.Context,
	userID domain.UserID,
	id domain.BreachID) (*domain.BreachFinding, error) {
	resolved, err := m.storage.ResolveBreachFinding(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not resolve breach finding: %w", err)
	}
	if resolved == nil {
		return nil, serrors.With(serrors.ErrNotFound, "breach finding not found")
	}

	return resolved, nil
}

func (m monitor) Dashboard(ctx context.Context, userID domain.UserID) (*Dashboard, error) {
	emails, err := m.storage.ActiveMonitoredEmails(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list active monitored emails: %w", err)
	}

	findings, err := m.storage.BreachFindingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list breach findings: %w", err)
	}

	stats := domain.BreachStats{
		MonitoredEmails: len(emails),
		Total:           len(findings),
	}
	for _, f := range findings {
		if f.Status == domain.BreachStatusResolved {
			stats.Resolved++
		} else {
			stats.Open++
		}
	}

	return &Dashboard{
		Plan:  m.Plan(ctx, userID),
		Stats: stats,
		Score: stats.ExposureScore(),
	}, nil
}

// lockPlanTx seeds a Free profile for first-time users and then locks the
// profile row for the rest of the transaction. Concurrent quota checks for
// the same user block on this lock. Failures abort the mutation instead of
// falling back to Free.
func (m monitor) lockPlanTx(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID) (domain.PlanTier, error) {
	if err := tx.EnsureProfile(ctx, userID, domain.PlanFree); err != nil {
		return "", fmt.Errorf("could not seed profile: %w", err)
	}

	plan, found, err := tx.PlanByUserForUpdate(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("could not lock profile: %w", err)
	}
	if !found || (plan != domain.PlanFree && plan != domain.PlanPremium) {
		return domain.PlanFree, nil
	}

	return plan, nil
}

// New creates a Monitor backed by the provided storage.
func New(storage storage.Storage) Monitor {
	return &monitor{storage: storage}
}
