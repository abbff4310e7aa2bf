package lead

import "wheelstreet/internal/domain"

// SubmitLeadRequest is the public capture form payload. Only name and
// phone are required; the form performs no format validation on phone.
type SubmitLeadRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// UpdateLeadRequest carries the three admin-editable fields. Omitted
// fields keep their stored value; team_member_id 0 clears the assignment.
type UpdateLeadRequest struct {
	Status       *domain.LeadStatus `json:"status"`
	Notes        *string            `json:"notes"`
	TeamMemberID *int64             `json:"team_member_id"`
}

// LeadView is a lead enriched with the resolved assignee name for the
// dashboard and the CSV export.
type LeadView struct {
	domain.Lead
	AssigneeName string `json:"assignee_name"`
}

type ListResponse struct {
	Leads []LeadView `json:"leads"`
	Total int        `json:"total"`
}

// DebugDump is the combined leads + team snapshot used by the pipeline tab
type DebugDump struct {
	Leads       []LeadView          `json:"leads"`
	TeamMembers []domain.TeamMember `json:"team_members"`
}
