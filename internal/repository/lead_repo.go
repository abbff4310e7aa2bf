package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"wheelstreet/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        *string   `gorm:"column:email"`
	Phone        string    `gorm:"column:phone;not null"`
	Interest     *string   `gorm:"column:interest"`
	Message      *string   `gorm:"column:message"`
	Status       string    `gorm:"column:status;not null;default:new"`
	Notes        *string   `gorm:"column:notes"`
	TeamMemberID *int64    `gorm:"column:team_member_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	return &domain.Lead{
		ID:           m.ID,
		Name:         m.Name,
		Email:        deref(m.Email),
		Phone:        m.Phone,
		Interest:     deref(m.Interest),
		Message:      deref(m.Message),
		Status:       domain.LeadStatus(m.Status),
		Notes:        deref(m.Notes),
		TeamMemberID: m.TeamMemberID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:           l.ID,
		Name:         l.Name,
		Email:        nilIfEmpty(l.Email),
		Phone:        l.Phone,
		Interest:     nilIfEmpty(l.Interest),
		Message:      nilIfEmpty(l.Message),
		Status:       string(l.Status),
		Notes:        nilIfEmpty(l.Notes),
		TeamMemberID: l.TeamMemberID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	m := toLeadModel(lead)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*lead = *toDomainLead(m)
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var m leadModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainLead(m), nil
}

// List returns every lead, newest first. The admin dashboard loads the
// full table into memory and filters client-side.
func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var models []leadModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

// UpdateManaged writes exactly the admin-editable columns: status, notes
// and assignment. Contact fields and the original message are never touched.
func (r *LeadRepository) UpdateManaged(ctx context.Context, id int64, status domain.LeadStatus, notes string, teamMemberID *int64) error {
	res := r.db.WithContext(ctx).Model(&leadModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":         string(status),
		"notes":          nilIfEmpty(notes),
		"team_member_id": teamMemberID,
		"updated_at":     time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&leadModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
