package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"breachwatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const emailCacheTable = "intel_email_cache"

func (p *PgSQL) EmailLookupCache(ctx context.Context, email string) (*domain.EmailLookupCacheEntry, error) {
	var row PgEmailCache
	found, err := p.Builder.From(emailCacheTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("could not fetch email lookup cache from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpsertEmailLookupCache replaces the cached lookup result for the email in
// place, so the table never holds more than one row per address.
func (p *PgSQL) UpsertEmailLookupCache(ctx context.Context, entry domain.EmailLookupCacheEntry) error {
	var pgEntry PgEmailCache
	if err := pgEntry.FromDomain(entry); err != nil {
		return fmt.Errorf("could not encode email lookup cache entry: %w", err)
	}

	if _, err := p.Builder.Insert(emailCacheTable).
		Rows(pgEntry).
		OnConflict(goqu.DoUpdate("email", goqu.Record{
			"last_result": pgEntry.LastResult,
			"checked_at":  pgEntry.CheckedAt,
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert email lookup cache into pg: %w", err)
	}

	return nil
}
