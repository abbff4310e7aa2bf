package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wheelstreet/internal/domain"
)

func sampleLeads() []domain.Lead {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Lead{
		{ID: 1, Name: "Jonas Jonaitis", Phone: "+37061234567", Status: domain.LeadStatusNew, CreatedAt: base},
		{ID: 2, Name: "Greta Petrauskaitė", Email: "greta@example.com", Phone: "+37069876543", Status: domain.LeadStatusContacted, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Tomas Kazlauskas", Email: "tomas@example.com", Phone: "+37061111111", Status: domain.LeadStatusWon, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestFilterLeads_NoFilterReturnsAll(t *testing.T) {
	got := FilterLeads(sampleLeads(), Filter{})
	assert.Len(t, got, 3)
}

func TestFilterLeads_ByStatus(t *testing.T) {
	got := FilterLeads(sampleLeads(), Filter{Status: domain.LeadStatusWon})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterLeads_QueryMatchesNameEmailPhone(t *testing.T) {
	leads := sampleLeads()

	byName := FilterLeads(leads, Filter{Query: "jonas"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "Jonas Jonaitis", byName[0].Name)

	byEmail := FilterLeads(leads, Filter{Query: "GRETA@"})
	assert.Len(t, byEmail, 1)

	byPhone := FilterLeads(leads, Filter{Query: "1111"})
	assert.Len(t, byPhone, 1)
	assert.Equal(t, int64(3), byPhone[0].ID)
}

func TestFilterLeads_StatusAndQueryCombine(t *testing.T) {
	got := FilterLeads(sampleLeads(), Filter{Status: domain.LeadStatusNew, Query: "tomas"})
	assert.Empty(t, got)
}

func TestSortLeadsNewestFirst(t *testing.T) {
	leads := sampleLeads()
	SortLeadsNewestFirst(leads)

	assert.Equal(t, int64(3), leads[0].ID)
	assert.Equal(t, int64(1), leads[2].ID)
}
