package content

import "wheelstreet/internal/domain"

type CreateSectionRequest struct {
	SectionType string            `json:"section_type" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	CTAText     string            `json:"cta_text"`
	CTALink     string            `json:"cta_link"`
	Image       string            `json:"image"`
	Active      *bool             `json:"active"`
	Extra       map[string]string `json:"extra"`
}

// UpdateSectionRequest writes the full editable row back; section_type
// and sort_order are immutable through this request.
type UpdateSectionRequest struct {
	Title       string            `json:"title" validate:"required"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	CTAText     string            `json:"cta_text"`
	CTALink     string            `json:"cta_link"`
	Image       string            `json:"image"`
	Active      bool              `json:"active"`
	Extra       map[string]string `json:"extra"`
}

type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type CreateTabRequest struct {
	TabID            string   `json:"tab_id" validate:"required"`
	Title            string   `json:"title" validate:"required"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Icon             string   `json:"icon"`
	Benefits         []string `json:"benefits"`
	Image            string   `json:"image"`
	Active           *bool    `json:"active"`
}

type UpdateTabRequest struct {
	Title            string   `json:"title" validate:"required"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Icon             string   `json:"icon"`
	Benefits         []string `json:"benefits"`
	Image            string   `json:"image"`
	Active           bool     `json:"active"`
}

type SectionsResponse struct {
	Sections []domain.PageSection `json:"sections"`
}

type TabsResponse struct {
	Tabs []domain.ServiceTab `json:"tabs"`
}
