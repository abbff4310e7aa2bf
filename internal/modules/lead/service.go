package lead

import (
	"context"
	"errors"
	"log"
	"time"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/pkg/notify"
	"wheelstreet/internal/repository"
)

const unassignedLabel = "Unassigned"

type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	UpdateManaged(ctx context.Context, id int64, status domain.LeadStatus, notes string, teamMemberID *int64) error
	Delete(ctx context.Context, id int64) error
}

type TeamMemberReader interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
}

// Service handles lead intake and the admin pipeline workflow
type Service struct {
	repo     LeadRepository
	team     TeamMemberReader
	notifier notify.Notifier
}

func NewService(repo LeadRepository, team TeamMemberReader, notifier notify.Notifier) *Service {
	return &Service{
		repo:     repo,
		team:     team,
		notifier: notifier,
	}
}

// Submit creates a lead with status "new". Repeated submissions create
// separate rows; there is no deduplication. The notification email is
// fired best-effort and never blocks or fails the submission.
func (s *Service) Submit(ctx context.Context, req *SubmitLeadRequest) (*domain.Lead, error) {
	now := time.Now()
	lead := &domain.Lead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Interest:  req.Interest,
		Message:   req.Message,
		Status:    domain.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	go func(l domain.Lead) {
		if err := s.notifier.LeadSubmitted(&l); err != nil {
			log.Printf("lead notification failed: lead_id=%d error=%v", l.ID, err)
		}
	}(*lead)

	return lead, nil
}

// List returns leads matching the filter, newest first, with assignee
// names resolved. A deleted assignee resolves to "Unassigned" rather
// than an error.
func (s *Service) List(ctx context.Context, f Filter) ([]LeadView, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterLeads(leads, f)
	SortLeadsNewestFirst(filtered)

	return s.withAssignees(ctx, filtered), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// Update merges the request into the stored lead and writes exactly the
// three managed fields. Omitted fields keep their value; team_member_id 0
// clears the assignment. Contact fields and the message are never touched.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.TeamMemberID != nil {
		if *req.TeamMemberID == 0 {
			lead.TeamMemberID = nil
		} else {
			lead.TeamMemberID = req.TeamMemberID
		}
	}

	if err := s.repo.UpdateManaged(ctx, id, lead.Status, lead.Notes, lead.TeamMemberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	lead.UpdatedAt = time.Now()
	return lead, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLeadNotFound
		}
		return err
	}
	return nil
}

// Stats recomputes the dashboard aggregates from the full lead list
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(leads, time.Now())
	return &stats, nil
}

// Dump returns the combined leads + team snapshot for the pipeline tab
func (s *Service) Dump(ctx context.Context) (*DebugDump, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.team.List(ctx)
	if err != nil {
		return nil, err
	}

	return &DebugDump{
		Leads:       s.withAssignees(ctx, leads),
		TeamMembers: members,
	}, nil
}

func (s *Service) withAssignees(ctx context.Context, leads []domain.Lead) []LeadView {
	names := make(map[int64]string)
	if members, err := s.team.List(ctx); err == nil {
		for _, m := range members {
			names[m.ID] = m.Name
		}
	}

	views := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		name := unassignedLabel
		if l.TeamMemberID != nil {
			if n, ok := names[*l.TeamMemberID]; ok {
				name = n
			}
		}
		views = append(views, LeadView{Lead: l, AssigneeName: name})
	}
	return views
}
