package domain

import "time"

// PageSection represents an editable block of home page copy.
// SectionType is a unique human-chosen key (hero, services, about, ...).
// SortOrder determines rendering sequence; inactive sections stay in storage
// but are hidden from the public site.
type PageSection struct {
	ID          int64             `json:"id"`
	SectionType string            `json:"section_type"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Description string            `json:"description,omitempty"`
	CTAText     string            `json:"cta_text,omitempty"`
	CTALink     string            `json:"cta_link,omitempty"`
	Image       string            `json:"image,omitempty"`
	SortOrder   int               `json:"sort_order"`
	Active      bool              `json:"active"`
	Extra       map[string]string `json:"extra,omitempty"`
	Tabs        []ServiceTab      `json:"tabs,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ServiceTab represents one tabbed service offering nested under a section.
// TabID is unique within its parent section.
type ServiceTab struct {
	ID               int64     `json:"id"`
	SectionID        int64     `json:"section_id"`
	TabID            string    `json:"tab_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description,omitempty"`
	FullDescription  string    `json:"full_description,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	Benefits         []string  `json:"benefits,omitempty"`
	Image            string    `json:"image,omitempty"`
	SortOrder        int       `json:"sort_order"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
