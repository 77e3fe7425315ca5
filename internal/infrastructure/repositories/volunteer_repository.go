package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/you/dmhub/domain"
)

// VolunteerRepositoryImpl implements domain.VolunteerRepository using GORM.
type VolunteerRepositoryImpl struct {
	db *gorm.DB
}

// DBVolunteer represents the database model for Volunteer.
type DBVolunteer struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:128;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	Phone        string    `gorm:"uniqueIndex;size:32;not null"`
	Location     string    `gorm:"size:255;not null;index"`
	Skills       string    `gorm:"size:255"`
	RegisteredAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (DBVolunteer) TableName() string {
	return "volunteers"
}

// NewVolunteerRepository creates a new volunteer repository.
func NewVolunteerRepository(db *gorm.DB) domain.VolunteerRepository {
	return &VolunteerRepositoryImpl{db: db}
}

// Create implements domain.VolunteerRepository.
func (r *VolunteerRepositoryImpl) Create(ctx context.Context, v *domain.Volunteer) error {
	if v.RegisteredAt.IsZero() {
		v.RegisteredAt = time.Now().UTC()
	}
	dbVol := r.domainToDB(v)
	if err := r.db.WithContext(ctx).Create(dbVol).Error; err != nil {
		return err
	}
	v.ID = dbVol.ID
	return nil
}

// ExistsByEmailOrPhone implements domain.VolunteerRepository.
func (r *VolunteerRepositoryImpl) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DBVolunteer{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByLocationKey implements domain.VolunteerRepository. Matching is a
// case-insensitive substring scan over the free-text location field.
func (r *VolunteerRepositoryImpl) FindByLocationKey(ctx context.Context, key string) ([]domain.Volunteer, error) {
	var dbVols []DBVolunteer
	pattern := "%" + strings.ToLower(key) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(location) LIKE ?", pattern).
		Find(&dbVols).Error
	if err != nil {
		return nil, err
	}

	volunteers := make([]domain.Volunteer, 0, len(dbVols))
	for i := range dbVols {
		volunteers = append(volunteers, *r.dbToDomain(&dbVols[i]))
	}
	return volunteers, nil
}

func (r *VolunteerRepositoryImpl) domainToDB(v *domain.Volunteer) *DBVolunteer {
	return &DBVolunteer{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Location:     v.Location,
		Skills:       v.Skills,
		RegisteredAt: v.RegisteredAt,
	}
}

func (r *VolunteerRepositoryImpl) dbToDomain(dbVol *DBVolunteer) *domain.Volunteer {
	return &domain.Volunteer{
		ID:           dbVol.ID,
		Name:         dbVol.Name,
		Email:        dbVol.Email,
		Phone:        dbVol.Phone,
		Location:     dbVol.Location,
		Skills:       dbVol.Skills,
		RegisteredAt: dbVol.RegisteredAt,
	}
}
