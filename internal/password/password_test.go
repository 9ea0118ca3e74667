package password_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"breachwatch/internal/password"
	mockintel "breachwatch/pkg/intel/mock"
	"breachwatch/pkg/intel"
	"breachwatch/pkg/ratelimit"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLimiter() *ratelimit.Limiter {
	// a nanosecond interval keeps tests instant while still exercising the gate
	return ratelimit.New(time.Nanosecond)
}

func TestChecker_EmptyPassword_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)
	// no expectations: any provider call would fail the test

	checker := password.New(mock, newLimiter())

	count, err := checker.ExposureCount(context.Background(), "")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestChecker_MatchingSuffixReturnsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)

	// SHA1("password") = 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8
	mock.EXPECT().
		PasswordRange(gomock.Any(), "5BAA6").
		Return([]intel.RangeEntry{
			{Suffix: "0043A9F0066A945D97CBEB6F30FCD014A109B4A4", Count: 7},
			{Suffix: "1E4C9B93F3F0682250B6CF8331B7EE68FD8", Count: 3},
		}, nil)

	checker := password.New(mock, newLimiter())

	count, err := checker.ExposureCount(context.Background(), "password")
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestChecker_SuffixMatchIsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)

	mock.EXPECT().
		PasswordRange(gomock.Any(), "5BAA6").
		Return([]intel.RangeEntry{
			{Suffix: "1e4c9b93f3f0682250b6cf8331b7ee68fd8", Count: 42},
		}, nil)

	checker := password.New(mock, newLimiter())

	count, err := checker.ExposureCount(context.Background(), "password")
	require.NoError(t, err)
	require.EqualValues(t, 42, count)
}

func TestChecker_NoMatchReturnsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)

	mock.EXPECT().
		PasswordRange(gomock.Any(), gomock.Any()).
		Return([]intel.RangeEntry{
			{Suffix: "0043A9F0066A945D97CBEB6F30FCD014A109B4A4", Count: 7},
		}, nil)

	checker := password.New(mock, newLimiter())

	count, err := checker.ExposureCount(context.Background(), "password")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestChecker_ProviderErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)

	mock.EXPECT().
		PasswordRange(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	checker := password.New(mock, newLimiter())

	count, err := checker.ExposureCount(context.Background(), "password")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestChecker_CancelledContextSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockintel.NewMockClient(ctrl)
	// no expectations: the limiter rejects before any provider call is made

	limiter := ratelimit.New(time.Hour)
	// claim the first slot so the next acquisition has to wait out the interval
	require.NoError(t, limiter.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := password.New(mock, limiter)

	_, err := checker.ExposureCount(ctx, "password")
	require.Error(t, err)
}
