package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wheelstreet/internal/domain"
)

type LegalPageRepository struct {
	db *gorm.DB
}

func NewLegalPageRepository(db *gorm.DB) *LegalPageRepository {
	return &LegalPageRepository{db: db}
}

type legalPageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	PageType  string    `gorm:"column:page_type;uniqueIndex;not null"`
	Title     string    `gorm:"column:title;not null"`
	Content   string    `gorm:"column:content"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (legalPageModel) TableName() string { return "legal_pages" }

func toDomainLegalPage(m legalPageModel) *domain.LegalPage {
	return &domain.LegalPage{
		ID:        m.ID,
		PageType:  m.PageType,
		Title:     m.Title,
		Content:   m.Content,
		Active:    m.Active,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *LegalPageRepository) List(ctx context.Context) ([]domain.LegalPage, error) {
	var models []legalPageModel
	if err := r.db.WithContext(ctx).Order("page_type ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	pages := make([]domain.LegalPage, 0, len(models))
	for _, m := range models {
		pages = append(pages, *toDomainLegalPage(m))
	}
	return pages, nil
}

func (r *LegalPageRepository) GetByType(ctx context.Context, pageType string) (*domain.LegalPage, error) {
	var m legalPageModel
	err := r.db.WithContext(ctx).First(&m, "page_type = ?", pageType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainLegalPage(m), nil
}

func (r *LegalPageRepository) Create(ctx context.Context, page *domain.LegalPage) error {
	m := legalPageModel{
		PageType:  page.PageType,
		Title:     page.Title,
		Content:   page.Content,
		Active:    page.Active,
		UpdatedAt: page.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*page = *toDomainLegalPage(m)
	return nil
}

// Update writes title and content and refreshes the timestamp
func (r *LegalPageRepository) Update(ctx context.Context, pageType, title, content string) error {
	res := r.db.WithContext(ctx).Model(&legalPageModel{}).Where("page_type = ?", pageType).Updates(map[string]any{
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
