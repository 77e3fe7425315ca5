package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/dmhub/domain"
)

// AdminRepositoryImpl implements domain.AdminRepository using GORM.
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// DBAdminUser represents the database model for AdminUser.
type DBAdminUser struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Phone        string    `gorm:"uniqueIndex;size:32;not null"`
	RegisteredAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (DBAdminUser) TableName() string {
	return "admin_users"
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

// Create implements domain.AdminRepository.
func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *domain.AdminUser) error {
	if admin.RegisteredAt.IsZero() {
		admin.RegisteredAt = time.Now().UTC()
	}
	dbAdmin := r.domainToDB(admin)
	if err := r.db.WithContext(ctx).Create(dbAdmin).Error; err != nil {
		return err
	}
	admin.ID = dbAdmin.ID
	return nil
}

// FindByEmail implements domain.AdminRepository.
func (r *AdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var dbAdmin DBAdminUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbAdmin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAdmin), nil
}

// FindByPhone implements domain.AdminRepository.
func (r *AdminRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.AdminUser, error) {
	var dbAdmin DBAdminUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbAdmin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAdmin), nil
}

// ListAll implements domain.AdminRepository. Every admin receives alert
// SMS fan-out, so the full directory is loaded at dispatch time.
func (r *AdminRepositoryImpl) ListAll(ctx context.Context) ([]domain.AdminUser, error) {
	var dbAdmins []DBAdminUser
	if err := r.db.WithContext(ctx).Find(&dbAdmins).Error; err != nil {
		return nil, err
	}
	admins := make([]domain.AdminUser, 0, len(dbAdmins))
	for i := range dbAdmins {
		admins = append(admins, *r.dbToDomain(&dbAdmins[i]))
	}
	return admins, nil
}

// UpdatePassword implements domain.AdminRepository.
func (r *AdminRepositoryImpl) UpdatePassword(ctx context.Context, phone, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&DBAdminUser{}).
		Where("phone = ?", phone).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryImpl) domainToDB(admin *domain.AdminUser) *DBAdminUser {
	return &DBAdminUser{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Phone:        admin.Phone,
		RegisteredAt: admin.RegisteredAt,
	}
}

func (r *AdminRepositoryImpl) dbToDomain(dbAdmin *DBAdminUser) *domain.AdminUser {
	return &domain.AdminUser{
		ID:           dbAdmin.ID,
		Email:        dbAdmin.Email,
		PasswordHash: dbAdmin.PasswordHash,
		Phone:        dbAdmin.Phone,
		RegisteredAt: dbAdmin.RegisteredAt,
	}
}
