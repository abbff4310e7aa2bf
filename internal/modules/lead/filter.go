package lead

import (
	"sort"
	"strings"

	"wheelstreet/internal/domain"
)

// Filter selects leads the way the dashboard does: an optional status
// match plus a case-insensitive substring search over name, email and
// phone. Empty fields match everything.
type Filter struct {
	Status domain.LeadStatus
	Query  string
}

// FilterLeads is a pure function over the in-memory lead slice; the
// handlers and the CSV export share it so the exported rows always equal
// the displayed rows.
func FilterLeads(leads []domain.Lead, f Filter) []domain.Lead {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if q != "" && !matchesQuery(&l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l *domain.Lead, q string) bool {
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Email), q) ||
		strings.Contains(strings.ToLower(l.Phone), q)
}

// SortLeadsNewestFirst orders leads by creation time descending,
// breaking ties by ID so the order is stable.
func SortLeadsNewestFirst(leads []domain.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].ID > leads[j].ID
		}
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}
