package monitor_test

import (
	"context"
	"errors"
	"testing"

	"breachwatch/internal/monitor"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"
	"breachwatch/pkg/storage"
	mockstorage "breachwatch/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// withTxPassthrough makes the mocked WithTx run its callback against the
// given transactional mock.
func withTxPassthrough(store *mockstorage.MockStorage, tx *mockstorage.MockAllStorage) {
	store.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
}

func TestPlan_FallsBackToFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	userID := domain.UserID(uuid.New())

	tests := []struct {
		name  string
		setup func()
		want  domain.PlanTier
	}{
		{
			name: "premium profile",
			setup: func() {
				store.EXPECT().PlanByUser(gomock.Any(), userID).Return(domain.PlanPremium, true, nil)
			},
			want: domain.PlanPremium,
		},
		{
			name: "no profile",
			setup: func() {
				store.EXPECT().PlanByUser(gomock.Any(), userID).Return(domain.PlanTier(""), false, nil)
			},
			want: domain.PlanFree,
		},
		{
			name: "read failure",
			setup: func() {
				store.EXPECT().PlanByUser(gomock.Any(), userID).
					Return(domain.PlanTier(""), false, errors.New("db down"))
			},
			want: domain.PlanFree,
		},
		{
			name: "unrecognized tier",
			setup: func() {
				store.EXPECT().PlanByUser(gomock.Any(), userID).Return(domain.PlanTier("enterprise"), true, nil)
			},
			want: domain.PlanFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			require.Equal(t, tt.want, monitor.New(store).Plan(context.Background(), userID))
		})
	}
}

func TestSetMonitoredEmail_FirstEmailUnderFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanTier(""), false, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).Return(nil, nil)
	tx.EXPECT().
		UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
			require.Equal(t, "alice@example.com", e.Email)
			require.True(t, e.Active)
			e.ID = domain.EmailID(uuid.New())

			return &e, nil
		})

	got, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, " Alice@Example.COM ", false)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestSetMonitoredEmail_FreeQuotaDeniedWithoutReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanFree, true, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).
		Return([]domain.MonitoredEmail{{Email: "old@example.com", Active: true}}, nil)
	// no deactivation, no upsert: state must stay untouched

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "new@example.com", false)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrLimitReached)
}

func TestSetMonitoredEmail_FreeReplaceDeactivatesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanFree, true, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).
		Return([]domain.MonitoredEmail{{Email: "old@example.com", Active: true}}, nil)

	gomock.InOrder(
		tx.EXPECT().DeactivateMonitoredEmails(gomock.Any(), userID).Return(nil),
		tx.EXPECT().
			UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
				e.ID = domain.EmailID(uuid.New())

				return &e, nil
			}),
	)

	got, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "new@example.com", true)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)
}

func TestSetMonitoredEmail_ReAddingActiveEmailBypassesQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanFree, true, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).
		Return([]domain.MonitoredEmail{{Email: "alice@example.com", Active: true}}, nil)
	tx.EXPECT().
		UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
			return &e, nil
		})

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "alice@example.com", false)
	require.NoError(t, err)
}

func TestSetMonitoredEmail_PremiumIsUnbounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	active := make([]domain.MonitoredEmail, 50)
	for i := range active {
		active[i] = domain.MonitoredEmail{Email: "x@example.com", Active: true}
	}

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanPremium, true, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).Return(active, nil)
	tx.EXPECT().
		UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
			return &e, nil
		})

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "another@example.com", false)
	require.NoError(t, err)
}

func TestSetMonitoredEmail_LocksProfileBeforeQuotaRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	gomock.InOrder(
		tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil),
		tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanFree, true, nil),
		tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).Return(nil, nil),
		tx.EXPECT().
			UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.MonitoredEmail) (*domain.MonitoredEmail, error) {
				return &e, nil
			}),
	)

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "alice@example.com", false)
	require.NoError(t, err)
}

func TestSetMonitoredEmail_LockFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).
		Return(domain.PlanTier(""), false, errors.New("lock timeout"))
	// no quota read, no mutation: an unlocked check must not proceed

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "alice@example.com", false)
	require.Error(t, err)
}

func TestSetMonitoredEmail_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), domain.UserID(uuid.New()), "not-an-email", false)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSetMonitoredEmail_StorageFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())

	withTxPassthrough(store, tx)
	tx.EXPECT().EnsureProfile(gomock.Any(), userID, domain.PlanFree).Return(nil)
	tx.EXPECT().PlanByUserForUpdate(gomock.Any(), userID).Return(domain.PlanFree, true, nil)
	tx.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).Return(nil, nil)
	tx.EXPECT().
		UpsertMonitoredEmail(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("constraint violation"))

	_, err := monitor.New(store).SetMonitoredEmail(context.Background(), userID, "alice@example.com", false)
	require.Error(t, err)
}

func TestResolveBreach_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	userID := domain.UserID(uuid.New())
	id := domain.BreachID(uuid.New())

	store.EXPECT().ResolveBreachFinding(gomock.Any(), userID, id).Return(nil, nil)

	_, err := monitor.New(store).ResolveBreach(context.Background(), userID, id)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDashboard_CountsAndScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	userID := domain.UserID(uuid.New())

	store.EXPECT().ActiveMonitoredEmails(gomock.Any(), userID).
		Return([]domain.MonitoredEmail{{Email: "alice@example.com", Active: true}}, nil)
	store.EXPECT().BreachFindingsByUser(gomock.Any(), userID).
		Return([]domain.BreachFinding{
			{Title: "A", Status: domain.BreachStatusOpen},
			{Title: "B", Status: domain.BreachStatusOpen},
			{Title: "C", Status: domain.BreachStatusResolved},
		}, nil)
	store.EXPECT().PlanByUser(gomock.Any(), userID).Return(domain.PlanFree, true, nil)

	dash, err := monitor.New(store).Dashboard(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, dash.Plan)
	require.Equal(t, 1, dash.Stats.MonitoredEmails)
	require.Equal(t, 3, dash.Stats.Total)
	require.Equal(t, 2, dash.Stats.Open)
	require.Equal(t, 1, dash.Stats.Resolved)
	// 86 baseline - (2*8 + 1*2) penalty
	require.Equal(t, 68, dash.Score)
}
