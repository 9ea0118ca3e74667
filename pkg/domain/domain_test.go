package domain_test

import (
	"testing"
	"time"

	"breachwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestCanAddMonitoredEmail(t *testing.T) {
	t.Parallel()

	require.True(t, domain.CanAddMonitoredEmail(domain.PlanFree, 0))
	require.False(t, domain.CanAddMonitoredEmail(domain.PlanFree, 1))
	require.False(t, domain.CanAddMonitoredEmail(domain.PlanFree, 3))
	require.True(t, domain.CanAddMonitoredEmail(domain.PlanPremium, 0))
	require.True(t, domain.CanAddMonitoredEmail(domain.PlanPremium, 50))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "user@example.com", domain.NormalizeEmail("  User@Example.COM "))
	require.Equal(t, "a@b.c", domain.NormalizeEmail("a@b.c"))
	require.Equal(t, "", domain.NormalizeEmail("   "))
}

func TestExposureScore(t *testing.T) {
	t.Parallel()

	require.Equal(t, 86, domain.BreachStats{}.ExposureScore(), "clean account keeps the baseline")
	require.Equal(t, 78, domain.BreachStats{Open: 1}.ExposureScore())
	require.Equal(t, 84, domain.BreachStats{Resolved: 1}.ExposureScore())
	require.Equal(t, 26, domain.BreachStats{Open: 7, Resolved: 2}.ExposureScore())
	// penalty is capped at 60, floor at 24
	require.Equal(t, 26, domain.BreachStats{Open: 100}.ExposureScore())
}

func TestCacheEntryFresh(t *testing.T) {
	t.Parallel()

	now := time.Now()
	week := 7 * 24 * time.Hour

	require.False(t, domain.EmailLookupCacheEntry{}.Fresh(now, week), "zero CheckedAt is never fresh")
	require.True(t, domain.EmailLookupCacheEntry{CheckedAt: now.Add(-time.Hour)}.Fresh(now, week))
	require.False(t, domain.EmailLookupCacheEntry{CheckedAt: now.Add(-8 * 24 * time.Hour)}.Fresh(now, week))
}
