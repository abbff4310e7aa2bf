package domain

import "time"

// LegalPage represents a static legal document rendered by type (privacy, terms, cookies)
type LegalPage struct {
	ID        int64     `json:"id"`
	PageType  string    `json:"page_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}
