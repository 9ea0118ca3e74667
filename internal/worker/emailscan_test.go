package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"breachwatch/internal/lookup"
	mocklookup "breachwatch/internal/lookup/mock"
	"breachwatch/internal/reconcile"
	"breachwatch/internal/scan"
	"breachwatch/internal/worker"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/storage"
	mockstorage "breachwatch/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scanJob(email domain.MonitoredEmail) *river.Job[scan.JobArgs] {
	return &river.Job[scan.JobArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args: scan.JobArgs{
			Email:   email.Email,
			UserID:  uuid.UUID(email.UserID),
			EmailID: uuid.UUID(email.ID),
		},
	}
}

func activeEmail() domain.MonitoredEmail {
	return domain.MonitoredEmail{
		ID:     domain.EmailID(uuid.New()),
		UserID: domain.UserID(uuid.New()),
		Email:  "alice@example.com",
		Active: true,
	}
}

func TestEmailScanWorker_ReconcilesLookupResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	lookupMock := mocklookup.NewMockLookup(ctrl)

	email := activeEmail()
	checkedAt := time.Now().Add(-time.Second)
	breaches := []json.RawMessage{json.RawMessage(`{"Name":"ExampleCorp"}`)}

	store.EXPECT().
		MonitoredEmailByID(gomock.Any(), email.UserID, email.ID).
		Return(&email, nil)
	lookupMock.EXPECT().
		Breaches(gomock.Any(), email.Email).
		Return(&lookup.Result{Breaches: breaches, CheckedAt: checkedAt}, nil)
	store.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	tx.EXPECT().
		UpsertBreachFinding(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.BreachFinding) (*domain.BreachFinding, error) {
			require.Equal(t, "ExampleCorp", f.Title)

			return &f, nil
		})
	tx.EXPECT().TouchMonitoredEmail(gomock.Any(), email.ID, checkedAt).Return(nil)

	w := worker.NewEmailScanWorker(store, lookupMock, reconcile.New())
	require.NoError(t, w.Work(context.Background(), scanJob(email)))
}

func TestEmailScanWorker_InactiveEmailCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	lookupMock := mocklookup.NewMockLookup(ctrl)

	email := activeEmail()
	email.Active = false

	store.EXPECT().
		MonitoredEmailByID(gomock.Any(), email.UserID, email.ID).
		Return(&email, nil)

	w := worker.NewEmailScanWorker(store, lookupMock, reconcile.New())
	err := w.Work(context.Background(), scanJob(email))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEmailScanWorker_MissingEmailCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	lookupMock := mocklookup.NewMockLookup(ctrl)

	email := activeEmail()

	store.EXPECT().
		MonitoredEmailByID(gomock.Any(), email.UserID, email.ID).
		Return(nil, nil)

	w := worker.NewEmailScanWorker(store, lookupMock, reconcile.New())
	require.Error(t, w.Work(context.Background(), scanJob(email)))
}

func TestEmailScanWorker_NeedsKeySkipsReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	lookupMock := mocklookup.NewMockLookup(ctrl)

	email := activeEmail()

	store.EXPECT().
		MonitoredEmailByID(gomock.Any(), email.UserID, email.ID).
		Return(&email, nil)
	lookupMock.EXPECT().
		Breaches(gomock.Any(), email.Email).
		Return(&lookup.Result{NeedsKey: true}, nil)
	// no WithTx: nothing may be written

	w := worker.NewEmailScanWorker(store, lookupMock, reconcile.New())
	require.NoError(t, w.Work(context.Background(), scanJob(email)))
}

func TestEmailScanWorker_LookupErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	lookupMock := mocklookup.NewMockLookup(ctrl)

	email := activeEmail()

	store.EXPECT().
		MonitoredEmailByID(gomock.Any(), email.UserID, email.ID).
		Return(&email, nil)
	lookupMock.EXPECT().
		Breaches(gomock.Any(), email.Email).
		Return(nil, errors.New("context canceled"))

	w := worker.NewEmailScanWorker(store, lookupMock, reconcile.New())
	require.Error(t, w.Work(context.Background(), scanJob(email)))
}
