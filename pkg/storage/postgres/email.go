package postgres

import (
	"context"
	"fmt"
	"time"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const monitoredEmailsTable = "monitored_emails"

func (p *PgSQL) MonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error) {
	var rows []PgMonitoredEmail
	if err := p.Builder.From(monitoredEmailsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("is_active").Desc(), goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch monitored emails from pg: %w", err)
	}

	return pgEmailsToDomain(rows), nil
}

func (p *PgSQL) ActiveMonitoredEmails(ctx context.Context, userID domain.UserID) ([]domain.MonitoredEmail, error) {
	var rows []PgMonitoredEmail
	if err := p.Builder.From(monitoredEmailsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_active").IsTrue(),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active monitored emails from pg: %w", err)
	}

	return pgEmailsToDomain(rows), nil
}

func (p *PgSQL) MonitoredEmailByID(ctx context.Context,
	userID domain.UserID,
	id domain.EmailID) (*domain.MonitoredEmail, error) {
	var row PgMonitoredEmail
	found, err := p.Builder.From(monitoredEmailsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch monitored email by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpsertMonitoredEmail inserts the record, or reactivates the existing row
// for the same (user_id, email) pair.
func (p *PgSQL) UpsertMonitoredEmail(ctx context.Context,
	email domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
	var pgEmail PgMonitoredEmail
	pgEmail.FromDomain(email)

	var row PgMonitoredEmail
	found, err := p.Builder.Insert(monitoredEmailsTable).
		Rows(pgEmail).
		OnConflict(goqu.DoUpdate("user_id, email", goqu.Record{
			"is_active":  true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgMonitoredEmail{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert monitored email into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert of monitored email returned no row")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeactivateMonitoredEmails(ctx context.Context, userID domain.UserID) error {
	_, err := p.Builder.Update(monitoredEmailsTable).
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("is_active").IsTrue(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not deactivate monitored emails in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) TouchMonitoredEmail(ctx context.Context, id domain.EmailID, checkedAt time.Time) error {
	_, err := p.Builder.Update(monitoredEmailsTable).
		Set(goqu.Record{
			"last_checked": checkedAt,
			"is_active":    true,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch monitored email in pg: %w", err)
	}

	return nil
}
