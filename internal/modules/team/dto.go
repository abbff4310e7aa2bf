package team

import "wheelstreet/internal/domain"

type ContactRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

type CreateMemberRequest struct {
	Slug     string         `json:"slug"`
	Name     string         `json:"name" validate:"required"`
	Position string         `json:"position" validate:"required"`
	Image    string         `json:"image"`
	Bio      []string       `json:"bio"`
	Contact  ContactRequest `json:"contact"`
}

type UpdateMemberRequest struct {
	Slug     string         `json:"slug" validate:"required"`
	Name     string         `json:"name" validate:"required"`
	Position string         `json:"position" validate:"required"`
	Image    string         `json:"image"`
	Bio      []string       `json:"bio"`
	Contact  ContactRequest `json:"contact"`
}

type ListResponse struct {
	Members []domain.TeamMember `json:"members"`
	Total   int                 `json:"total"`
}
