package contentcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"wheelstreet/internal/domain"
)

const (
	keySections      = "sections"
	keySectionPrefix = "section:"
)

// Cache is a typed read-through cache for rarely-changing marketing copy.
// Every mutating content operation calls Invalidate, which is the only
// invalidation path; entries also expire on their own after the TTL.
type Cache struct {
	store *gocache.Cache
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Sections() ([]domain.PageSection, bool) {
	v, ok := c.store.Get(keySections)
	if !ok {
		return nil, false
	}
	sections, ok := v.([]domain.PageSection)
	return sections, ok
}

func (c *Cache) SetSections(sections []domain.PageSection) {
	c.store.SetDefault(keySections, sections)
}

func (c *Cache) Section(sectionType string) (*domain.PageSection, bool) {
	v, ok := c.store.Get(keySectionPrefix + sectionType)
	if !ok {
		return nil, false
	}
	section, ok := v.(*domain.PageSection)
	return section, ok
}

func (c *Cache) SetSection(section *domain.PageSection) {
	c.store.SetDefault(keySectionPrefix+section.SectionType, section)
}

// Invalidate drops every cached entry so public reads refetch fresh rows
func (c *Cache) Invalidate() {
	c.store.Flush()
}
