package legal

import (
	"context"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/repository"
)

type LegalPageRepository interface {
	List(ctx context.Context) ([]domain.LegalPage, error)
	GetByType(ctx context.Context, pageType string) (*domain.LegalPage, error)
	Create(ctx context.Context, page *domain.LegalPage) error
	Update(ctx context.Context, pageType, title, content string) error
}

type Service struct {
	repo      LegalPageRepository
	sanitizer *bluemonday.Policy
}

func NewService(repo LegalPageRepository) *Service {
	return &Service{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.LegalPage, error) {
	return s.repo.List(ctx)
}

// PublicPage returns an active page with its HTML body sanitized. Content
// is stored as the author wrote it; filtering happens on the way out so a
// policy change applies to existing rows immediately.
func (s *Service) PublicPage(ctx context.Context, pageType string) (*domain.LegalPage, error) {
	page, err := s.repo.GetByType(ctx, pageType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get legal page: %w", err)
	}
	if !page.Active {
		return nil, ErrPageNotFound
	}

	page.Content = s.sanitizer.Sanitize(page.Content)
	return page, nil
}

// Update rewrites title and content for the given page type, creating the
// row if it does not exist yet.
func (s *Service) Update(ctx context.Context, req *UpdatePageRequest) (*domain.LegalPage, error) {
	err := s.repo.Update(ctx, req.PageType, req.Title, req.Content)
	if errors.Is(err, repository.ErrNotFound) {
		page := &domain.LegalPage{
			PageType: req.PageType,
			Title:    req.Title,
			Content:  req.Content,
			Active:   true,
		}
		if err := s.repo.Create(ctx, page); err != nil {
			return nil, fmt.Errorf("create legal page: %w", err)
		}
		return page, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update legal page: %w", err)
	}

	return s.repo.GetByType(ctx, req.PageType)
}
