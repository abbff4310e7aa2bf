package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wheelstreet/internal/domain"
)

func TestComputeStats_Counts(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	leads := []domain.Lead{
		{ID: 1, Interest: "acquisition", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, Interest: "acquisition", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 3, Interest: "financing", CreatedAt: now.AddDate(0, 0, -10)},
		{ID: 4, CreatedAt: now.AddDate(0, 0, -40)},
	}

	stats := ComputeStats(leads, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Last7Days)
	assert.Equal(t, 3, stats.Last30Days)
	assert.Equal(t, 2, stats.ByInterest["acquisition"])
	assert.Equal(t, 1, stats.ByInterest["financing"])
	assert.Equal(t, 1, stats.ByInterest["unspecified"])
}

func TestComputeStats_DailySeriesZeroFilled(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	leads := []domain.Lead{
		{ID: 1, CreatedAt: now},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: now.AddDate(0, 0, -5)},
	}

	stats := ComputeStats(leads, now)

	assert.Len(t, stats.Daily, trendDays)
	assert.Equal(t, "2026-08-17", stats.Daily[0].Date)
	assert.Equal(t, "2026-08-30", stats.Daily[trendDays-1].Date)
	assert.Equal(t, 2, stats.Daily[trendDays-1].Count)

	zeros := 0
	for _, d := range stats.Daily {
		if d.Count == 0 {
			zeros++
		}
	}
	assert.Equal(t, trendDays-2, zeros)
}

func TestComputeStats_RecentCappedAtFive(t *testing.T) {
	now := time.Now()

	var leads []domain.Lead
	for i := 0; i < 8; i++ {
		leads = append(leads, domain.Lead{
			ID:        int64(i + 1),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	stats := ComputeStats(leads, now)

	assert.Len(t, stats.Recent, 5)
	assert.Equal(t, int64(1), stats.Recent[0].ID)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Zero(t, stats.Total)
	assert.Len(t, stats.Daily, trendDays)
	assert.Empty(t, stats.Recent)
}
