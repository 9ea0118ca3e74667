package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"breachwatch/pkg/domain"

	"github.com/google/uuid"
)

type PgMonitoredEmail struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Email       string       `db:"email"`
	IsActive    bool         `db:"is_active"`
	LastChecked sql.NullTime `db:"last_checked" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgMonitoredEmail) ToDomain() *domain.MonitoredEmail {
	return &domain.MonitoredEmail{
		ID:          domain.EmailID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Email:       p.Email,
		Active:      p.IsActive,
		LastChecked: p.LastChecked.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgMonitoredEmail) FromDomain(m domain.MonitoredEmail) {
	*p = PgMonitoredEmail{
		ID:       uuid.UUID(m.ID),
		UserID:   uuid.UUID(m.UserID),
		Email:    m.Email,
		IsActive: m.Active,
		LastChecked: sql.NullTime{
			Time:  m.LastChecked,
			Valid: !m.LastChecked.IsZero(),
		},
	}
}

func pgEmailsToDomain(rows []PgMonitoredEmail) []domain.MonitoredEmail {
	out := make([]domain.MonitoredEmail, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgBreachFinding struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	UserID  uuid.UUID `db:"user_id"`
	EmailID uuid.UUID `db:"email_id"`

	Email      string          `db:"email"`
	Title      string          `db:"breach_title"`
	Domain     sql.NullString  `db:"domain"`
	BreachDate sql.NullString  `db:"breach_date"`
	Severity   string          `db:"severity"`
	Critical   bool            `db:"critical"`
	Status     string          `db:"status" goqu:"skipinsert"`
	Details    json.RawMessage `db:"details"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBreachFinding) ToDomain() *domain.BreachFinding {
	status := domain.BreachStatus(p.Status)
	if status == "" {
		status = domain.BreachStatusOpen
	}

	return &domain.BreachFinding{
		ID:         domain.BreachID(p.ID),
		UserID:     domain.UserID(p.UserID),
		EmailID:    domain.EmailID(p.EmailID),
		Email:      p.Email,
		Title:      p.Title,
		Domain:     p.Domain.String,
		BreachDate: p.BreachDate.String,
		Severity:   domain.BreachSeverity(p.Severity),
		Critical:   p.Critical,
		Status:     status,
		Details:    p.Details,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgBreachFinding) FromDomain(f domain.BreachFinding) {
	*p = PgBreachFinding{
		ID:      uuid.UUID(f.ID),
		UserID:  uuid.UUID(f.UserID),
		EmailID: uuid.UUID(f.EmailID),
		Email:   f.Email,
		Title:   f.Title,
		Domain: sql.NullString{
			String: f.Domain,
			Valid:  f.Domain != "",
		},
		BreachDate: sql.NullString{
			String: f.BreachDate,
			Valid:  f.BreachDate != "",
		},
		Severity: string(f.Severity),
		Critical: f.Critical,
		Details:  f.Details,
	}
}

func pgFindingsToDomain(rows []PgBreachFinding) []domain.BreachFinding {
	out := make([]domain.BreachFinding, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgEmailCache struct {
	Email      string          `db:"email"`
	LastResult json.RawMessage `db:"last_result"`
	CheckedAt  time.Time       `db:"checked_at"`
}

func (p *PgEmailCache) ToDomain() (*domain.EmailLookupCacheEntry, error) {
	var breaches []json.RawMessage
	if len(p.LastResult) > 0 {
		if err := json.Unmarshal(p.LastResult, &breaches); err != nil {
			return nil, fmt.Errorf("could not unmarshal cached breach list: %w", err)
		}
	}

	return &domain.EmailLookupCacheEntry{
		Email:     p.Email,
		Breaches:  breaches,
		CheckedAt: p.CheckedAt,
	}, nil
}

func (p *PgEmailCache) FromDomain(e domain.EmailLookupCacheEntry) error {
	breaches := e.Breaches
	if breaches == nil {
		breaches = []json.RawMessage{}
	}
	raw, err := json.Marshal(breaches)
	if err != nil {
		return fmt.Errorf("could not marshal breach list: %w", err)
	}

	*p = PgEmailCache{
		Email:      e.Email,
		LastResult: raw,
		CheckedAt:  e.CheckedAt,
	}

	return nil
}

type PgProfile struct {
	UserID uuid.UUID `db:"user_id"`
	Plan   string    `db:"plan"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}
