package domain

import "time"

// TeamMemberContact holds the optional contact details shown on a profile page
type TeamMemberContact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// TeamMember represents a staff profile. Slug is unique and used for public routing.
// Bio is an ordered list of paragraphs; at least one is always present.
type TeamMember struct {
	ID        int64             `json:"id"`
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	Position  string            `json:"position"`
	Image     string            `json:"image,omitempty"`
	Bio       []string          `json:"bio"`
	Contact   TeamMemberContact `json:"contact"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
