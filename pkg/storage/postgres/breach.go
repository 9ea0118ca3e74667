package postgres

import (
	"context"
	"fmt"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const breachFindingsTable = "breach_findings"

// UpsertBreachFinding inserts the finding or refreshes the derived fields of
// the row matching the (user_id, email, breach_title) dedup key. The status
// column is deliberately absent from the conflict update so a manual
// resolution is never reverted by a rescan.
func (p *PgSQL) UpsertBreachFinding(ctx context.Context,
	finding domain.BreachFinding) (*domain.BreachFinding, error) {
	var pgFinding PgBreachFinding
	pgFinding.FromDomain(finding)

	var row PgBreachFinding
	found, err := p.Builder.Insert(breachFindingsTable).
		Rows(pgFinding).
		OnConflict(goqu.DoUpdate("user_id, email, breach_title", goqu.Record{
			"email_id":    pgFinding.EmailID,
			"domain":      pgFinding.Domain,
			"breach_date": pgFinding.BreachDate,
			"severity":    pgFinding.Severity,
			"critical":    pgFinding.Critical,
			"details":     pgFinding.Details,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgBreachFinding{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert breach finding into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert of breach finding returned no row")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BreachFindingsByUser(ctx context.Context, userID domain.UserID) ([]domain.BreachFinding, error) {
	var rows []PgBreachFinding
	if err := p.Builder.From(breachFindingsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(
			goqu.L("status = ?", string(domain.BreachStatusResolved)).Asc(),
			goqu.I("created_at").Desc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch breach findings from pg: %w", err)
	}

	return pgFindingsToDomain(rows), nil
}

func (p *PgSQL) ResolveBreachFinding(ctx context.Context,
	userID domain.UserID,
	id domain.BreachID) (*domain.BreachFinding, error) {
	var row PgBreachFinding
	found, err := p.Builder.Update(breachFindingsTable).
		Set(goqu.Record{
			"status":     string(domain.BreachStatusResolved),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgBreachFinding{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not resolve breach finding in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
