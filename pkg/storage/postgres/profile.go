package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const profilesTable = "profiles"

func (p *PgSQL) PlanByUser(ctx context.Context, userID domain.UserID) (domain.PlanTier, bool, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", false, fmt.Errorf("could not fetch profile from pg: %w", err)
	}
	if !found {
		return "", false, nil
	}

	return domain.PlanTier(row.Plan), true, nil
}

func (p *PgSQL) PlanByUserForUpdate(ctx context.Context, userID domain.UserID) (domain.PlanTier, bool, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", false, fmt.Errorf("could not lock profile in pg: %w", err)
	}
	if !found {
		return "", false, nil
	}

	return domain.PlanTier(row.Plan), true, nil
}

func (p *PgSQL) EnsureProfile(ctx context.Context, userID domain.UserID, plan domain.PlanTier) error {
	if _, err := p.Builder.Insert(profilesTable).
		Rows(PgProfile{
			UserID: uuid.UUID(userID),
			Plan:   string(plan),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not ensure profile in pg: %w", err)
	}

	return nil
}
