package team

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/repository"
)

type TeamMemberRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id int64) error
}

// Service manages staff profiles
type Service struct {
	repo TeamMemberRepository
}

func NewService(repo TeamMemberRepository) *Service {
	return &Service{repo: repo}
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name into a URL-safe slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *Service) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	member, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Create adds a staff profile. A slug given explicitly must be free;
// an omitted slug is derived from the name, falling back to a random
// suffix when the derived one is taken.
func (s *Service) Create(ctx context.Context, req *CreateMemberRequest) (*domain.TeamMember, error) {
	bio := trimBio(req.Bio)
	if len(bio) == 0 {
		return nil, ErrBioRequired
	}

	slug := strings.TrimSpace(req.Slug)
	explicit := slug != ""
	if !explicit {
		slug = Slugify(req.Name)
	}

	taken, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if taken {
		if explicit {
			return nil, ErrSlugTaken
		}
		slug = slug + "-" + uuid.NewString()[:8]
	}

	now := time.Now()
	member := &domain.TeamMember{
		Slug:     slug,
		Name:     req.Name,
		Position: req.Position,
		Image:    req.Image,
		Bio:      bio,
		Contact: domain.TeamMemberContact{
			Email:    req.Contact.Email,
			Phone:    req.Contact.Phone,
			LinkedIn: req.Contact.LinkedIn,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*domain.TeamMember, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bio := trimBio(req.Bio)
	if len(bio) == 0 {
		return nil, ErrBioRequired
	}

	if req.Slug != member.Slug {
		taken, err := s.repo.ExistsBySlug(ctx, req.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	member.Slug = req.Slug
	member.Name = req.Name
	member.Position = req.Position
	member.Image = req.Image
	member.Bio = bio
	member.Contact = domain.TeamMemberContact{
		Email:    req.Contact.Email,
		Phone:    req.Contact.Phone,
		LinkedIn: req.Contact.LinkedIn,
	}
	member.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the profile outright. Leads assigned to this member are
// left untouched; their lookups resolve to "Unassigned" from then on.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func trimBio(paragraphs []string) []string {
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
