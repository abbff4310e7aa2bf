package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"wheelstreet/internal/domain"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

type pageSectionModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	SectionType string    `gorm:"column:section_type;uniqueIndex;not null"`
	Title       string    `gorm:"column:title;not null"`
	Subtitle    *string   `gorm:"column:subtitle"`
	Description *string   `gorm:"column:description"`
	CTAText     *string   `gorm:"column:cta_text"`
	CTALink     *string   `gorm:"column:cta_link"`
	Image       *string   `gorm:"column:image"`
	SortOrder   int       `gorm:"column:sort_order;not null;default:0"`
	Active      bool      `gorm:"column:active;not null;default:true"`
	Extra       string    `gorm:"column:extra"` // JSON object of additional keyed strings
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (pageSectionModel) TableName() string { return "page_sections" }

type serviceTabModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	SectionID        int64     `gorm:"column:section_id;index;not null"`
	TabID            string    `gorm:"column:tab_id;not null"`
	Title            string    `gorm:"column:title;not null"`
	ShortDescription *string   `gorm:"column:short_description"`
	FullDescription  *string   `gorm:"column:full_description"`
	Icon             *string   `gorm:"column:icon"`
	Benefits         string    `gorm:"column:benefits"` // JSON array of strings
	Image            *string   `gorm:"column:image"`
	SortOrder        int       `gorm:"column:sort_order;not null;default:0"`
	Active           bool      `gorm:"column:active;not null;default:true"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (serviceTabModel) TableName() string { return "service_tabs" }

func toDomainSection(m pageSectionModel) *domain.PageSection {
	var extra map[string]string
	if m.Extra != "" {
		_ = json.Unmarshal([]byte(m.Extra), &extra)
	}

	return &domain.PageSection{
		ID:          m.ID,
		SectionType: m.SectionType,
		Title:       m.Title,
		Subtitle:    deref(m.Subtitle),
		Description: deref(m.Description),
		CTAText:     deref(m.CTAText),
		CTALink:     deref(m.CTALink),
		Image:       deref(m.Image),
		SortOrder:   m.SortOrder,
		Active:      m.Active,
		Extra:       extra,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSectionModel(s *domain.PageSection) pageSectionModel {
	extra := ""
	if len(s.Extra) > 0 {
		b, _ := json.Marshal(s.Extra)
		extra = string(b)
	}

	return pageSectionModel{
		ID:          s.ID,
		SectionType: s.SectionType,
		Title:       s.Title,
		Subtitle:    nilIfEmpty(s.Subtitle),
		Description: nilIfEmpty(s.Description),
		CTAText:     nilIfEmpty(s.CTAText),
		CTALink:     nilIfEmpty(s.CTALink),
		Image:       nilIfEmpty(s.Image),
		SortOrder:   s.SortOrder,
		Active:      s.Active,
		Extra:       extra,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDomainTab(m serviceTabModel) *domain.ServiceTab {
	var benefits []string
	if m.Benefits != "" {
		_ = json.Unmarshal([]byte(m.Benefits), &benefits)
	}

	return &domain.ServiceTab{
		ID:               m.ID,
		SectionID:        m.SectionID,
		TabID:            m.TabID,
		Title:            m.Title,
		ShortDescription: deref(m.ShortDescription),
		FullDescription:  deref(m.FullDescription),
		Icon:             deref(m.Icon),
		Benefits:         benefits,
		Image:            deref(m.Image),
		SortOrder:        m.SortOrder,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toTabModel(t *domain.ServiceTab) serviceTabModel {
	benefits := ""
	if len(t.Benefits) > 0 {
		b, _ := json.Marshal(t.Benefits)
		benefits = string(b)
	}

	return serviceTabModel{
		ID:               t.ID,
		SectionID:        t.SectionID,
		TabID:            t.TabID,
		Title:            t.Title,
		ShortDescription: nilIfEmpty(t.ShortDescription),
		FullDescription:  nilIfEmpty(t.FullDescription),
		Icon:             nilIfEmpty(t.Icon),
		Benefits:         benefits,
		Image:            nilIfEmpty(t.Image),
		SortOrder:        t.SortOrder,
		Active:           t.Active,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// -------------------- Sections --------------------

func (r *SectionRepository) ListSections(ctx context.Context) ([]domain.PageSection, error) {
	var models []pageSectionModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	sections := make([]domain.PageSection, 0, len(models))
	for _, m := range models {
		sections = append(sections, *toDomainSection(m))
	}
	return sections, nil
}

// ListActiveSections returns active sections in display order, each with
// its active tabs attached in tab display order.
func (r *SectionRepository) ListActiveSections(ctx context.Context) ([]domain.PageSection, error) {
	var models []pageSectionModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	sections := make([]domain.PageSection, 0, len(models))
	for _, m := range models {
		s := toDomainSection(m)

		tabs, err := r.listTabs(ctx, m.ID, true)
		if err != nil {
			return nil, err
		}
		s.Tabs = tabs

		sections = append(sections, *s)
	}
	return sections, nil
}

func (r *SectionRepository) GetSectionByID(ctx context.Context, id int64) (*domain.PageSection, error) {
	var m pageSectionModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainSection(m), nil
}

func (r *SectionRepository) GetSectionByType(ctx context.Context, sectionType string) (*domain.PageSection, error) {
	var m pageSectionModel
	err := r.db.WithContext(ctx).First(&m, "section_type = ?", sectionType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s := toDomainSection(m)
	tabs, err := r.listTabs(ctx, m.ID, true)
	if err != nil {
		return nil, err
	}
	s.Tabs = tabs
	return s, nil
}

func (r *SectionRepository) ExistsSectionType(ctx context.Context, sectionType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&pageSectionModel{}).
		Where("section_type = ?", sectionType).Count(&count).Error
	return count > 0, err
}

func (r *SectionRepository) CountSections(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&pageSectionModel{}).Count(&count).Error
	return count, err
}

func (r *SectionRepository) MaxSectionOrder(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&pageSectionModel{}).
		Select("MAX(sort_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *SectionRepository) CreateSection(ctx context.Context, section *domain.PageSection) error {
	m := toSectionModel(section)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*section = *toDomainSection(m)
	return nil
}

func (r *SectionRepository) UpdateSection(ctx context.Context, section *domain.PageSection) error {
	m := toSectionModel(section)
	res := r.db.WithContext(ctx).Model(&pageSectionModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"title":       m.Title,
		"subtitle":    m.Subtitle,
		"description": m.Description,
		"cta_text":    m.CTAText,
		"cta_link":    m.CTALink,
		"image":       m.Image,
		"active":      m.Active,
		"extra":       m.Extra,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SectionRepository) DeleteSection(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&serviceTabModel{}, "section_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&pageSectionModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SwapSectionOrder exchanges the sort_order of two sections in a single
// transaction, so a crash can never leave the pair half-swapped.
func (r *SectionRepository) SwapSectionOrder(ctx context.Context, a, b *domain.PageSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&pageSectionModel{}).Where("id = ?", a.ID).
			Updates(map[string]any{"sort_order": b.SortOrder, "updated_at": time.Now()}).Error; err != nil {
			return err
		}
		return tx.Model(&pageSectionModel{}).Where("id = ?", b.ID).
			Updates(map[string]any{"sort_order": a.SortOrder, "updated_at": time.Now()}).Error
	})
}

// -------------------- Tabs --------------------

func (r *SectionRepository) listTabs(ctx context.Context, sectionID int64, activeOnly bool) ([]domain.ServiceTab, error) {
	q := r.db.WithContext(ctx).Where("section_id = ?", sectionID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var models []serviceTabModel
	if err := q.Order("sort_order ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tabs := make([]domain.ServiceTab, 0, len(models))
	for _, m := range models {
		tabs = append(tabs, *toDomainTab(m))
	}
	return tabs, nil
}

func (r *SectionRepository) ListTabs(ctx context.Context, sectionID int64) ([]domain.ServiceTab, error) {
	return r.listTabs(ctx, sectionID, false)
}

func (r *SectionRepository) GetTabByID(ctx context.Context, id int64) (*domain.ServiceTab, error) {
	var m serviceTabModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainTab(m), nil
}

func (r *SectionRepository) ExistsTabID(ctx context.Context, sectionID int64, tabID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&serviceTabModel{}).
		Where("section_id = ? AND tab_id = ?", sectionID, tabID).Count(&count).Error
	return count > 0, err
}

func (r *SectionRepository) MaxTabOrder(ctx context.Context, sectionID int64) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&serviceTabModel{}).
		Where("section_id = ?", sectionID).
		Select("MAX(sort_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *SectionRepository) CreateTab(ctx context.Context, tab *domain.ServiceTab) error {
	m := toTabModel(tab)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*tab = *toDomainTab(m)
	return nil
}

func (r *SectionRepository) UpdateTab(ctx context.Context, tab *domain.ServiceTab) error {
	m := toTabModel(tab)
	res := r.db.WithContext(ctx).Model(&serviceTabModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"title":             m.Title,
		"short_description": m.ShortDescription,
		"full_description":  m.FullDescription,
		"icon":              m.Icon,
		"benefits":          m.Benefits,
		"image":             m.Image,
		"active":            m.Active,
		"updated_at":        time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SectionRepository) DeleteTab(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&serviceTabModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SectionRepository) SwapTabOrder(ctx context.Context, a, b *domain.ServiceTab) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&serviceTabModel{}).Where("id = ?", a.ID).
			Updates(map[string]any{"sort_order": b.SortOrder, "updated_at": time.Now()}).Error; err != nil {
			return err
		}
		return tx.Model(&serviceTabModel{}).Where("id = ?", b.ID).
			Updates(map[string]any{"sort_order": a.SortOrder, "updated_at": time.Now()}).Error
	})
}
