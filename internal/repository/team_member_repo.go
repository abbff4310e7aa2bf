package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"wheelstreet/internal/domain"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

type teamMemberModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Slug      string    `gorm:"column:slug;uniqueIndex;not null"`
	Name      string    `gorm:"column:name;not null"`
	Position  string    `gorm:"column:position"`
	Image     *string   `gorm:"column:image"`
	Bio       string    `gorm:"column:bio"` // JSON array of paragraphs
	Email     *string   `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	LinkedIn  *string   `gorm:"column:linkedin"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (teamMemberModel) TableName() string { return "team_members" }

func toDomainTeamMember(m teamMemberModel) *domain.TeamMember {
	var bio []string
	if m.Bio != "" {
		_ = json.Unmarshal([]byte(m.Bio), &bio)
	}

	return &domain.TeamMember{
		ID:       m.ID,
		Slug:     m.Slug,
		Name:     m.Name,
		Position: m.Position,
		Image:    deref(m.Image),
		Bio:      bio,
		Contact: domain.TeamMemberContact{
			Email:    deref(m.Email),
			Phone:    deref(m.Phone),
			LinkedIn: deref(m.LinkedIn),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTeamMemberModel(t *domain.TeamMember) teamMemberModel {
	bio, _ := json.Marshal(t.Bio)

	return teamMemberModel{
		ID:        t.ID,
		Slug:      t.Slug,
		Name:      t.Name,
		Position:  t.Position,
		Image:     nilIfEmpty(t.Image),
		Bio:       string(bio),
		Email:     nilIfEmpty(t.Contact.Email),
		Phone:     nilIfEmpty(t.Contact.Phone),
		LinkedIn:  nilIfEmpty(t.Contact.LinkedIn),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	var models []teamMemberModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	members := make([]domain.TeamMember, 0, len(models))
	for _, m := range models {
		members = append(members, *toDomainTeamMember(m))
	}
	return members, nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	var m teamMemberModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainTeamMember(m), nil
}

func (r *TeamMemberRepository) GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	var m teamMemberModel
	err := r.db.WithContext(ctx).First(&m, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainTeamMember(m), nil
}

func (r *TeamMemberRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&teamMemberModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	m := toTeamMemberModel(member)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*member = *toDomainTeamMember(m)
	return nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	m := toTeamMemberModel(member)
	res := r.db.WithContext(ctx).Model(&teamMemberModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"slug":       m.Slug,
		"name":       m.Name,
		"position":   m.Position,
		"image":      m.Image,
		"bio":        m.Bio,
		"email":      m.Email,
		"phone":      m.Phone,
		"linkedin":   m.LinkedIn,
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

// Delete is a hard delete. Leads referencing this member keep their
// team_member_id; the lookup simply resolves to "Unassigned" afterwards.
func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&teamMemberModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
