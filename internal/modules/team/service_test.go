package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/repository"
)

type mockTeamRepo struct {
	mock.Mock
}

func (m *mockTeamRepo) List(ctx context.Context) ([]domain.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	member.ID = 1
	return args.Error(0)
}

func (m *mockTeamRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockTeamRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "mantas-urbonas", Slugify("Mantas Urbonas"))
	assert.Equal(t, "greta-petrauskait", Slugify("  Greta Petrauskaitė "))
	assert.Equal(t, "a-b-c", Slugify("a  b___c"))
}

func TestCreate_GeneratesSlugFromName(t *testing.T) {
	repo := new(mockTeamRepo)
	svc := NewService(repo)

	repo.On("ExistsBySlug", mock.Anything, "mantas-urbonas").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.TeamMember) bool {
		return m.Slug == "mantas-urbonas"
	})).Return(nil)

	member, err := svc.Create(context.Background(), &CreateMemberRequest{
		Name:     "Mantas Urbonas",
		Position: "CEO",
		Bio:      []string{"Founder."},
	})

	assert.NoError(t, err)
	assert.Equal(t, "mantas-urbonas", member.Slug)
}

func TestCreate_ExplicitSlugConflict(t *testing.T) {
	repo := new(mockTeamRepo)
	svc := NewService(repo)

	repo.On("ExistsBySlug", mock.Anything, "mantas").Return(true, nil)

	_, err := svc.Create(context.Background(), &CreateMemberRequest{
		Slug:     "mantas",
		Name:     "Mantas Urbonas",
		Position: "CEO",
		Bio:      []string{"Founder."},
	})

	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestCreate_RequiresBioParagraph(t *testing.T) {
	repo := new(mockTeamRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &CreateMemberRequest{
		Name:     "Mantas Urbonas",
		Position: "CEO",
		Bio:      []string{"   ", ""},
	})

	assert.ErrorIs(t, err, ErrBioRequired)
}

func TestUpdate_KeepingSlugSkipsUniquenessCheck(t *testing.T) {
	repo := new(mockTeamRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TeamMember{
		ID: 5, Slug: "mantas-urbonas", Name: "Mantas", Position: "CEO", Bio: []string{"x"},
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), 5, &UpdateMemberRequest{
		Slug:     "mantas-urbonas",
		Name:     "Mantas Urbonas",
		Position: "Founder & CEO",
		Bio:      []string{"Updated."},
	})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsBySlug")
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(mockTeamRepo)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, int64(9)).Return(repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrMemberNotFound)
}
