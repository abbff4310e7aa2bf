package content

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/pkg/contentcache"
	"wheelstreet/internal/repository"
)

type SectionRepository interface {
	ListSections(ctx context.Context) ([]domain.PageSection, error)
	ListActiveSections(ctx context.Context) ([]domain.PageSection, error)
	GetSectionByID(ctx context.Context, id int64) (*domain.PageSection, error)
	GetSectionByType(ctx context.Context, sectionType string) (*domain.PageSection, error)
	ExistsSectionType(ctx context.Context, sectionType string) (bool, error)
	CountSections(ctx context.Context) (int64, error)
	MaxSectionOrder(ctx context.Context) (int, error)
	CreateSection(ctx context.Context, section *domain.PageSection) error
	UpdateSection(ctx context.Context, section *domain.PageSection) error
	DeleteSection(ctx context.Context, id int64) error
	SwapSectionOrder(ctx context.Context, a, b *domain.PageSection) error

	ListTabs(ctx context.Context, sectionID int64) ([]domain.ServiceTab, error)
	GetTabByID(ctx context.Context, id int64) (*domain.ServiceTab, error)
	ExistsTabID(ctx context.Context, sectionID int64, tabID string) (bool, error)
	MaxTabOrder(ctx context.Context, sectionID int64) (int, error)
	CreateTab(ctx context.Context, tab *domain.ServiceTab) error
	UpdateTab(ctx context.Context, tab *domain.ServiceTab) error
	DeleteTab(ctx context.Context, id int64) error
	SwapTabOrder(ctx context.Context, a, b *domain.ServiceTab) error
}

// Service owns editable page content. Public reads go through the typed
// cache; every successful mutation invalidates it, which is the only
// cache invalidation in the system.
type Service struct {
	repo  SectionRepository
	cache *contentcache.Cache
}

func NewService(repo SectionRepository, cache *contentcache.Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// -------------------- Public reads --------------------

// PublicSections returns the active sections in display order. Storage
// failures and an empty store both degrade to the baked-in fallback copy.
func (s *Service) PublicSections(ctx context.Context) []domain.PageSection {
	if cached, ok := s.cache.Sections(); ok {
		return cached
	}

	sections, err := s.repo.ListActiveSections(ctx)
	if err != nil || len(sections) == 0 {
		if err != nil {
			log.Printf("content fetch failed, serving fallback: %v", err)
		}
		return FallbackSections()
	}

	s.cache.SetSections(sections)
	return sections
}

// PublicSection returns one section by its type key, falling back to the
// baked-in copy for known types.
func (s *Service) PublicSection(ctx context.Context, sectionType string) (*domain.PageSection, error) {
	if cached, ok := s.cache.Section(sectionType); ok {
		return cached, nil
	}

	section, err := s.repo.GetSectionByType(ctx, sectionType)
	if err != nil {
		if fb := fallbackByType(sectionType); fb != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				log.Printf("content fetch failed, serving fallback: %v", err)
			}
			return fb, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	s.cache.SetSection(section)
	return section, nil
}

func fallbackByType(sectionType string) *domain.PageSection {
	for _, fb := range FallbackSections() {
		if fb.SectionType == sectionType {
			s := fb
			return &s
		}
	}
	return nil
}

// -------------------- Admin: sections --------------------

func (s *Service) ListSections(ctx context.Context) ([]domain.PageSection, error) {
	return s.repo.ListSections(ctx)
}

func (s *Service) GetSection(ctx context.Context, id int64) (*domain.PageSection, error) {
	section, err := s.repo.GetSectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

// CreateSection requires a unique section_type; sort_order defaults to
// one past the current maximum.
func (s *Service) CreateSection(ctx context.Context, req *CreateSectionRequest) (*domain.PageSection, error) {
	sectionType := strings.TrimSpace(req.SectionType)

	taken, err := s.repo.ExistsSectionType(ctx, sectionType)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSectionTypeTaken
	}

	maxOrder, err := s.repo.MaxSectionOrder(ctx)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	section := &domain.PageSection{
		SectionType: sectionType,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		CTAText:     req.CTAText,
		CTALink:     req.CTALink,
		Image:       req.Image,
		SortOrder:   maxOrder + 1,
		Active:      active,
		Extra:       req.Extra,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateSection(ctx, section); err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	return section, nil
}

func (s *Service) UpdateSection(ctx context.Context, id int64, req *UpdateSectionRequest) (*domain.PageSection, error) {
	section, err := s.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}

	section.Title = req.Title
	section.Subtitle = req.Subtitle
	section.Description = req.Description
	section.CTAText = req.CTAText
	section.CTALink = req.CTALink
	section.Image = req.Image
	section.Active = req.Active
	section.Extra = req.Extra
	section.UpdatedAt = time.Now()

	if err := s.repo.UpdateSection(ctx, section); err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	return section, nil
}

// DeleteSection refuses to remove the last remaining section
func (s *Service) DeleteSection(ctx context.Context, id int64) error {
	count, err := s.repo.CountSections(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastSection
	}

	if err := s.repo.DeleteSection(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	s.cache.Invalidate()
	return nil
}

// MoveSection swaps the section's sort_order with its immediate
// neighbor in the given direction. Already at the edge is a no-op, which
// makes a double move of an adjacent pair restore the original order.
func (s *Service) MoveSection(ctx context.Context, id int64, direction string) error {
	if direction != "up" && direction != "down" {
		return ErrInvalidDirection
	}

	sections, err := s.repo.ListSections(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range sections {
		if sections[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrSectionNotFound
	}

	neighbor := idx - 1
	if direction == "down" {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(sections) {
		return nil
	}

	if err := s.repo.SwapSectionOrder(ctx, &sections[idx], &sections[neighbor]); err != nil {
		return err
	}

	s.cache.Invalidate()
	return nil
}

// -------------------- Admin: tabs --------------------

func (s *Service) ListTabs(ctx context.Context, sectionID int64) ([]domain.ServiceTab, error) {
	if _, err := s.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.repo.ListTabs(ctx, sectionID)
}

// CreateTab requires a tab_id unique within the parent section
func (s *Service) CreateTab(ctx context.Context, sectionID int64, req *CreateTabRequest) (*domain.ServiceTab, error) {
	if _, err := s.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}

	tabID := strings.TrimSpace(req.TabID)
	taken, err := s.repo.ExistsTabID(ctx, sectionID, tabID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTabIDTaken
	}

	maxOrder, err := s.repo.MaxTabOrder(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	tab := &domain.ServiceTab{
		SectionID:        sectionID,
		TabID:            tabID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Icon:             req.Icon,
		Benefits:         req.Benefits,
		Image:            req.Image,
		SortOrder:        maxOrder + 1,
		Active:           active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.CreateTab(ctx, tab); err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	return tab, nil
}

func (s *Service) UpdateTab(ctx context.Context, id int64, req *UpdateTabRequest) (*domain.ServiceTab, error) {
	tab, err := s.repo.GetTabByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}

	tab.Title = req.Title
	tab.ShortDescription = req.ShortDescription
	tab.FullDescription = req.FullDescription
	tab.Icon = req.Icon
	tab.Benefits = req.Benefits
	tab.Image = req.Image
	tab.Active = req.Active
	tab.UpdatedAt = time.Now()

	if err := s.repo.UpdateTab(ctx, tab); err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	return tab, nil
}

func (s *Service) DeleteTab(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTab(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTabNotFound
		}
		return err
	}

	s.cache.Invalidate()
	return nil
}

// MoveTab mirrors MoveSection within one section's tab list
func (s *Service) MoveTab(ctx context.Context, id int64, direction string) error {
	if direction != "up" && direction != "down" {
		return ErrInvalidDirection
	}

	tab, err := s.repo.GetTabByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTabNotFound
		}
		return err
	}

	tabs, err := s.repo.ListTabs(ctx, tab.SectionID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range tabs {
		if tabs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrTabNotFound
	}

	neighbor := idx - 1
	if direction == "down" {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(tabs) {
		return nil
	}

	if err := s.repo.SwapTabOrder(ctx, &tabs[idx], &tabs[neighbor]); err != nil {
		return err
	}

	s.cache.Invalidate()
	return nil
}
