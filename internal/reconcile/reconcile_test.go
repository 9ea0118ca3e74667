package reconcile_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"breachwatch/internal/reconcile"
	"breachwatch/pkg/domain"
	mockstorage "breachwatch/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func monitored() domain.MonitoredEmail {
	return domain.MonitoredEmail{
		ID:     domain.EmailID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		Email:  "alice@example.com",
		Active: true,
	}
}

func TestMapFinding_FieldCandidates(t *testing.T) {
	email := monitored()

	tests := []struct {
		name string
		raw  string
		want domain.BreachFinding
	}{
		{
			name: "canonical provider fields",
			raw:  `{"Name":"ExampleCorp","Domain":"example.com","BreachDate":"2024-01-15"}`,
			want: domain.BreachFinding{
				Title:      "ExampleCorp",
				Domain:     "example.com",
				BreachDate: "2024-01-15",
				Severity:   domain.SeverityMedium,
			},
		},
		{
			name: "alternate provider fields",
			raw:  `{"Title":"Other Site","Site":"other.io","breach_date":"2019-06-01"}`,
			want: domain.BreachFinding{
				Title:      "Other Site",
				Domain:     "other.io",
				BreachDate: "2019-06-01",
				Severity:   domain.SeverityMedium,
			},
		},
		{
			name: "lowest-priority title candidate",
			raw:  `{"breach":"LegacyDump"}`,
			want: domain.BreachFinding{
				Title:    "LegacyDump",
				Severity: domain.SeverityMedium,
			},
		},
		{
			name: "missing title falls back to unknown",
			raw:  `{"Domain":"mystery.net"}`,
			want: domain.BreachFinding{
				Title:    reconcile.UnknownTitle,
				Domain:   "mystery.net",
				Severity: domain.SeverityMedium,
			},
		},
		{
			name: "verified raises severity",
			raw:  `{"Name":"Verified","IsVerified":true}`,
			want: domain.BreachFinding{
				Title:    "Verified",
				Severity: domain.SeverityHigh,
			},
		},
		{
			name: "sensitive raises severity and critical",
			raw:  `{"Name":"Sensitive","IsSensitive":true}`,
			want: domain.BreachFinding{
				Title:    "Sensitive",
				Severity: domain.SeverityHigh,
				Critical: true,
			},
		},
		{
			name: "password data class marks critical",
			raw:  `{"Name":"PwLeak","DataClasses":["Email addresses","Passwords"]}`,
			want: domain.BreachFinding{
				Title:    "PwLeak",
				Severity: domain.SeverityMedium,
				Critical: true,
			},
		},
		{
			name: "unparsable record keeps payload",
			raw:  `"not an object"`,
			want: domain.BreachFinding{
				Title:    reconcile.UnknownTitle,
				Severity: domain.SeverityMedium,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.MapFinding(email, json.RawMessage(tt.raw))

			require.Equal(t, email.UserID, got.UserID)
			require.Equal(t, email.ID, got.EmailID)
			require.Equal(t, email.Email, got.Email)
			require.Equal(t, domain.BreachStatusOpen, got.Status)
			require.JSONEq(t, tt.raw, string(got.Details))

			require.Equal(t, tt.want.Title, got.Title)
			require.Equal(t, tt.want.Domain, got.Domain)
			require.Equal(t, tt.want.BreachDate, got.BreachDate)
			require.Equal(t, tt.want.Severity, got.Severity)
			require.Equal(t, tt.want.Critical, got.Critical)
		})
	}
}

func TestReconcile_UpsertsEachRecordAndStampsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockAllStorage(ctrl)

	email := monitored()
	checkedAt := time.Now()
	raw := []json.RawMessage{
		json.RawMessage(`{"Name":"ExampleCorp"}`),
		json.RawMessage(`{"Name":"OtherSite"}`),
	}

	store.EXPECT().
		UpsertBreachFinding(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.BreachFinding) (*domain.BreachFinding, error) {
			f.ID = domain.BreachID(uuid.New())

			return &f, nil
		}).
		Times(2)
	store.EXPECT().TouchMonitoredEmail(gomock.Any(), email.ID, checkedAt).Return(nil)

	findings, err := reconcile.New().Reconcile(context.Background(), store, email, raw, checkedAt)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	require.Equal(t, "ExampleCorp", findings[0].Title)
	require.Equal(t, "OtherSite", findings[1].Title)
}

func TestReconcile_EmptyListStillStampsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockAllStorage(ctrl)

	email := monitored()
	checkedAt := time.Now()

	store.EXPECT().TouchMonitoredEmail(gomock.Any(), email.ID, checkedAt).Return(nil)

	findings, err := reconcile.New().Reconcile(context.Background(), store, email, nil, checkedAt)
	require.NoError(t, err)
	require.Empty(t, findings)
}
