package lead

import (
	"time"

	"wheelstreet/internal/domain"
)

const trendDays = 14

// DayCount is one point of the daily submission trend
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Stats are the dashboard aggregates, recomputed from the full lead list
// on every request.
type Stats struct {
	Total      int            `json:"total"`
	Last7Days  int            `json:"last_7_days"`
	Last30Days int            `json:"last_30_days"`
	ByInterest map[string]int `json:"by_interest"`
	Daily      []DayCount     `json:"daily"`
	Recent     []domain.Lead  `json:"recent"`
}

// ComputeStats aggregates leads relative to now: totals, 7/30-day counts,
// an interest histogram, a zero-filled 14-day daily series and the five
// most recent submissions.
func ComputeStats(leads []domain.Lead, now time.Time) Stats {
	stats := Stats{
		Total:      len(leads),
		ByInterest: make(map[string]int),
	}

	cutoff7 := now.AddDate(0, 0, -7)
	cutoff30 := now.AddDate(0, 0, -30)

	dayCounts := make(map[string]int)
	for _, l := range leads {
		if l.CreatedAt.After(cutoff7) {
			stats.Last7Days++
		}
		if l.CreatedAt.After(cutoff30) {
			stats.Last30Days++
		}

		interest := l.Interest
		if interest == "" {
			interest = "unspecified"
		}
		stats.ByInterest[interest]++

		dayCounts[l.CreatedAt.Format("2006-01-02")]++
	}

	// Iterate the fixed day range so missing days come out as zero
	stats.Daily = make([]DayCount, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		stats.Daily = append(stats.Daily, DayCount{Date: day, Count: dayCounts[day]})
	}

	sorted := make([]domain.Lead, len(leads))
	copy(sorted, leads)
	SortLeadsNewestFirst(sorted)
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	stats.Recent = sorted

	return stats
}
