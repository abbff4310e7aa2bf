package contentcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wheelstreet/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Sections()
	assert.False(t, ok)

	sections := []domain.PageSection{{ID: 1, SectionType: "hero", Title: "Find your car"}}
	c.SetSections(sections)

	got, ok := c.Sections()
	assert.True(t, ok)
	assert.Equal(t, "hero", got[0].SectionType)

	c.SetSection(&sections[0])
	s, ok := c.Section("hero")
	assert.True(t, ok)
	assert.Equal(t, int64(1), s.ID)
}

func TestCacheInvalidateDropsEverything(t *testing.T) {
	c := New(time.Minute)
	c.SetSections([]domain.PageSection{{SectionType: "hero"}})
	c.SetSection(&domain.PageSection{SectionType: "services"})

	c.Invalidate()

	_, ok := c.Sections()
	assert.False(t, ok)
	_, ok = c.Section("services")
	assert.False(t, ok)
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	c.SetSections([]domain.PageSection{{SectionType: "hero"}})

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Sections()
	assert.False(t, ok)
}
