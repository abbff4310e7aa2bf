package lead

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/pkg/notify"
	"wheelstreet/internal/repository"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	lead.ID = 1
	return args.Error(0)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) List(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) UpdateManaged(ctx context.Context, id int64, status domain.LeadStatus, notes string, teamMemberID *int64) error {
	args := m.Called(ctx, id, status, notes, teamMemberID)
	return args.Error(0)
}

func (m *mockLeadRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTeamReader struct {
	mock.Mock
}

func (m *mockTeamReader) List(ctx context.Context) ([]domain.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func TestSubmit_CreatesNewLead(t *testing.T) {
	repo := new(mockLeadRepo)
	team := new(mockTeamReader)
	svc := NewService(repo, team, notify.Nop{})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Lead) bool {
		return l.Status == domain.LeadStatusNew && l.Name == "Jonas Jonaitis" && l.Phone == "+37061234567"
	})).Return(nil)

	lead, err := svc.Submit(context.Background(), &SubmitLeadRequest{
		Name:  "Jonas Jonaitis",
		Phone: "+37061234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Empty(t, lead.Email)
	assert.Empty(t, lead.Interest)
	repo.AssertExpectations(t)
}

func TestUpdate_StatusOnlyLeavesNotesAndAssignee(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo, new(mockTeamReader), notify.Nop{})

	assignee := int64(4)
	existing := &domain.Lead{
		ID:           7,
		Name:         "Jonas Jonaitis",
		Phone:        "+37061234567",
		Status:       domain.LeadStatusNew,
		Notes:        "called twice",
		TeamMemberID: &assignee,
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("UpdateManaged", mock.Anything, int64(7), domain.LeadStatusWon, "called twice", &assignee).Return(nil)

	won := domain.LeadStatusWon
	lead, err := svc.Update(context.Background(), 7, &UpdateLeadRequest{Status: &won})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadStatusWon, lead.Status)
	assert.Equal(t, "called twice", lead.Notes)
	assert.Equal(t, &assignee, lead.TeamMemberID)
	repo.AssertExpectations(t)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo, new(mockTeamReader), notify.Nop{})

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Lead{ID: 7, Status: domain.LeadStatusNew}, nil)

	bogus := domain.LeadStatus("archived")
	_, err := svc.Update(context.Background(), 7, &UpdateLeadRequest{Status: &bogus})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateManaged")
}

func TestUpdate_ZeroClearsAssignment(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo, new(mockTeamReader), notify.Nop{})

	assignee := int64(4)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Lead{
		ID: 7, Status: domain.LeadStatusContacted, TeamMemberID: &assignee,
	}, nil)
	repo.On("UpdateManaged", mock.Anything, int64(7), domain.LeadStatusContacted, "", (*int64)(nil)).Return(nil)

	zero := int64(0)
	lead, err := svc.Update(context.Background(), 7, &UpdateLeadRequest{TeamMemberID: &zero})

	assert.NoError(t, err)
	assert.Nil(t, lead.TeamMemberID)
	repo.AssertExpectations(t)
}

func TestList_ResolvesDeletedAssigneeAsUnassigned(t *testing.T) {
	repo := new(mockLeadRepo)
	team := new(mockTeamReader)
	svc := NewService(repo, team, notify.Nop{})

	gone := int64(99)
	known := int64(2)
	repo.On("List", mock.Anything).Return([]domain.Lead{
		{ID: 1, Name: "A", Phone: "1", Status: domain.LeadStatusNew, TeamMemberID: &gone, CreatedAt: time.Now()},
		{ID: 2, Name: "B", Phone: "2", Status: domain.LeadStatusNew, TeamMemberID: &known, CreatedAt: time.Now()},
		{ID: 3, Name: "C", Phone: "3", Status: domain.LeadStatusNew, CreatedAt: time.Now()},
	}, nil)
	team.On("List", mock.Anything).Return([]domain.TeamMember{
		{ID: 2, Name: "Mantas Urbonas"},
	}, nil)

	views, err := svc.List(context.Background(), Filter{})

	assert.NoError(t, err)
	byID := make(map[int64]string)
	for _, v := range views {
		byID[v.ID] = v.AssigneeName
	}
	assert.Equal(t, "Unassigned", byID[1])
	assert.Equal(t, "Mantas Urbonas", byID[2])
	assert.Equal(t, "Unassigned", byID[3])
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo, new(mockTeamReader), notify.Nop{})

	repo.On("Delete", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	err := svc.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrLeadNotFound)
}
