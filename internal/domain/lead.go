package domain

import "time"

// LeadStatus represents a lead's position in the sales pipeline
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiating LeadStatus = "negotiating"
	LeadStatusWon         LeadStatus = "won"
	LeadStatusLost        LeadStatus = "lost"
	LeadStatusRejected    LeadStatus = "rejected"
)

// AllLeadStatuses lists every status the pipeline accepts
var AllLeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiating,
	LeadStatusWon,
	LeadStatusLost,
	LeadStatusRejected,
}

// IsValid reports whether the status is one of the enumerated pipeline values
func (s LeadStatus) IsValid() bool {
	for _, v := range AllLeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Lead represents a prospective customer inquiry submitted through the public form.
// Name and Phone are always present; everything else is optional.
type Lead struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone"`
	Interest     string     `json:"interest,omitempty"`
	Message      string     `json:"message,omitempty"`
	Status       LeadStatus `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	TeamMemberID *int64     `json:"team_member_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (l *Lead) IsNew() bool {
	return l.Status == LeadStatusNew
}
