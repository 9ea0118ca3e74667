package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"breachwatch/internal/api/handler/v1handler"
	"breachwatch/internal/monitor"
	mockmonitor "breachwatch/internal/monitor/mock"
	mockpassword "breachwatch/internal/password/mock"
	"breachwatch/internal/scan"
	mockscan "breachwatch/internal/scan/mock"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	monitor  *mockmonitor.MockMonitor
	password *mockpassword.MockChecker
	scans    *mockscan.MockScans
}

func newHandler(t *testing.T) (*v1handler.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		monitor:  mockmonitor.NewMockMonitor(ctrl),
		password: mockpassword.NewMockChecker(ctrl),
		scans:    mockscan.NewMockScans(ctrl),
	}

	return v1handler.New(v1handler.Deps{
		Monitor:  m.monitor,
		Password: m.password,
		Scans:    m.scans,
	}), m
}

func do(h *v1handler.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	return rec
}

func TestCheckPassword(t *testing.T) {
	h, m := newHandler(t)

	m.password.EXPECT().
		ExposureCount(gomock.Any(), "hunter2").
		Return(int64(17), nil)

	rec := do(h, http.MethodPost, "/password-checks", `{"password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int64 `json:"count"`
		Exposed bool  `json:"exposed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.EqualValues(t, 17, resp.Count)
	require.True(t, resp.Exposed)
}

func TestCheckPassword_BadBody(t *testing.T) {
	h, _ := newHandler(t)

	rec := do(h, http.MethodPost, "/password-checks", `{"nope":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMonitoredEmails_EmptyListNotNull(t *testing.T) {
	h, m := newHandler(t)

	m.monitor.EXPECT().
		MonitoredEmails(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	rec := do(h, http.MethodGet, "/monitored-emails", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestSetMonitoredEmail_LimitReachedMapsToPaymentRequired(t *testing.T) {
	h, m := newHandler(t)

	m.monitor.EXPECT().
		SetMonitoredEmail(gomock.Any(), gomock.Any(), "new@example.com", false).
		Return(nil, serrors.With(serrors.ErrLimitReached, "plan allows one monitored email"))

	rec := do(h, http.MethodPut, "/monitored-emails", `{"email":"new@example.com"}`)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "LIMIT_REACHED", body.Error.Code)
}

func TestSetMonitoredEmail_Replace(t *testing.T) {
	h, m := newHandler(t)

	stored := &domain.MonitoredEmail{
		ID:     domain.EmailID(uuid.New()),
		Email:  "new@example.com",
		Active: true,
	}
	m.monitor.EXPECT().
		SetMonitoredEmail(gomock.Any(), gomock.Any(), "new@example.com", true).
		Return(stored, nil)

	rec := do(h, http.MethodPut, "/monitored-emails", `{"email":"new@example.com","replaceExisting":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTriggerScans(t *testing.T) {
	h, m := newHandler(t)

	m.scans.EXPECT().
		EnqueueUserScans(gomock.Any(), gomock.Any()).
		Return(&scan.Receipt{Emails: 2, Enqueued: 1}, nil)

	rec := do(h, http.MethodPost, "/scans", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"emails":2,"enqueued":1}`, rec.Body.String())
}

func TestResolveBreach(t *testing.T) {
	h, m := newHandler(t)

	id := uuid.New()
	m.monitor.EXPECT().
		ResolveBreach(gomock.Any(), gomock.Any(), domain.BreachID(id)).
		Return(&domain.BreachFinding{
			ID:     domain.BreachID(id),
			Title:  "ExampleCorp",
			Status: domain.BreachStatusResolved,
		}, nil)

	rec := do(h, http.MethodPost, "/breaches/"+id.String()+"/resolve", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveBreach_BadID(t *testing.T) {
	h, _ := newHandler(t)

	rec := do(h, http.MethodPost, "/breaches/not-a-uuid/resolve", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveBreach_NotFound(t *testing.T) {
	h, m := newHandler(t)

	id := uuid.New()
	m.monitor.EXPECT().
		ResolveBreach(gomock.Any(), gomock.Any(), domain.BreachID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "breach finding not found"))

	rec := do(h, http.MethodPost, "/breaches/"+id.String()+"/resolve", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDashboard(t *testing.T) {
	h, m := newHandler(t)

	m.monitor.EXPECT().
		Dashboard(gomock.Any(), gomock.Any()).
		Return(&monitor.Dashboard{
			Plan:  domain.PlanFree,
			Stats: domain.BreachStats{MonitoredEmails: 1, Total: 2, Open: 1, Resolved: 1},
			Score: 76,
		}, nil)

	rec := do(h, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp monitor.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 76, resp.Score)
}

func TestInternalErrorIsOpaque(t *testing.T) {
	h, m := newHandler(t)

	m.monitor.EXPECT().
		Breaches(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	rec := do(h, http.MethodGet, "/breaches", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "deadline")
}
