package legal

import "wheelstreet/internal/domain"

type UpdatePageRequest struct {
	PageType string `json:"page_type" validate:"required,oneof=privacy terms cookies"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type ListResponse struct {
	Pages []domain.LegalPage `json:"pages"`
}
