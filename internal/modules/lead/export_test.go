package lead

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheelstreet/internal/domain"
)

func TestWriteCSV_RowCountMatchesLeads(t *testing.T) {
	views := []LeadView{
		{Lead: domain.Lead{ID: 1, Name: "Jonas Jonaitis", Phone: "+37061234567", Status: domain.LeadStatusNew, CreatedAt: time.Now()}, AssigneeName: "Unassigned"},
		{Lead: domain.Lead{ID: 2, Name: "Greta Petrauskaitė", Phone: "+37069876543", Status: domain.LeadStatusWon, CreatedAt: time.Now()}, AssigneeName: "Mantas Urbonas"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, views))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + one row per lead
	assert.Len(t, records, 3)
	assert.Equal(t, "name", records[0][1])
	assert.Equal(t, "Jonas Jonaitis", records[1][1])
}

func TestWriteCSV_QuotesAndNewlinesSurviveRoundTrip(t *testing.T) {
	views := []LeadView{
		{Lead: domain.Lead{
			ID:      1,
			Name:    `UAB "Ratai"`,
			Phone:   "+37060000000",
			Message: "line one\nline two, with comma",
			Status:  domain.LeadStatusNew,
		}, AssigneeName: "Unassigned"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, views))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, `UAB "Ratai"`, records[1][1])
	assert.Equal(t, "line one\nline two, with comma", records[1][5])
}

func TestWriteCSV_EmptySetStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
