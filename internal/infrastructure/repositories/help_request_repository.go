package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/dmhub/domain"
)

// HelpRequestRepositoryImpl implements domain.HelpRequestRepository using GORM.
type HelpRequestRepositoryImpl struct {
	db *gorm.DB
}

// DBHelpRequest represents the database model for HelpRequest.
// Geolocation is flattened into nullable columns; both pointers are set or
// both are nil.
type DBHelpRequest struct {
	ID              string    `gorm:"primaryKey;size:36"`
	ReporterContact string    `gorm:"size:64;not null"`
	DisasterType    string    `gorm:"size:64;not null;index"`
	Description     string    `gorm:"not null"`
	Severity        string    `gorm:"size:16;not null"`
	ManualAddress   string    `gorm:"size:255"`
	Lat             *float64
	Lon             *float64
	Status          string    `gorm:"size:16;not null;index"`
	Timestamp       time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM.
func (DBHelpRequest) TableName() string {
	return "help_requests"
}

// NewHelpRequestRepository creates a new help request repository.
func NewHelpRequestRepository(db *gorm.DB) domain.HelpRequestRepository {
	return &HelpRequestRepositoryImpl{db: db}
}

// Create implements domain.HelpRequestRepository. The id and timestamp are
// assigned here if the caller left them empty.
func (r *HelpRequestRepositoryImpl) Create(ctx context.Context, req *domain.HelpRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}
	dbReq := r.domainToDB(req)
	return r.db.WithContext(ctx).Create(dbReq).Error
}

// FindByID implements domain.HelpRequestRepository.
func (r *HelpRequestRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.HelpRequest, error) {
	var dbReq DBHelpRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbReq).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbReq), nil
}

// ListActive implements domain.HelpRequestRepository.
func (r *HelpRequestRepositoryImpl) ListActive(ctx context.Context, completedSince time.Time, limit int) ([]domain.HelpRequest, error) {
	var dbReqs []DBHelpRequest
	err := r.db.WithContext(ctx).
		Where(
			r.db.Where("status IN ?", []string{string(domain.StatusPending), string(domain.StatusDispatched)}).
				Or("status = ? AND timestamp >= ?", string(domain.StatusCompleted), completedSince),
		).
		Order("timestamp DESC").
		Limit(limit).
		Find(&dbReqs).Error
	if err != nil {
		return nil, err
	}

	requests := make([]domain.HelpRequest, 0, len(dbReqs))
	for i := range dbReqs {
		requests = append(requests, *r.dbToDomain(&dbReqs[i]))
	}
	return requests, nil
}

// UpdateStatus implements domain.HelpRequestRepository. The status column
// is overwritten in place; no history is kept.
func (r *HelpRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error) {
	res := r.db.WithContext(ctx).
		Model(&DBHelpRequest{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *HelpRequestRepositoryImpl) domainToDB(req *domain.HelpRequest) *DBHelpRequest {
	dbReq := &DBHelpRequest{
		ID:              req.ID,
		ReporterContact: req.ReporterContact,
		DisasterType:    req.DisasterType,
		Description:     req.Description,
		Severity:        string(req.Severity),
		ManualAddress:   req.ManualAddress,
		Status:          string(req.Status),
		Timestamp:       req.Timestamp,
	}
	if req.Geolocation != nil {
		lat, lon := req.Geolocation.Lat, req.Geolocation.Lon
		dbReq.Lat, dbReq.Lon = &lat, &lon
	}
	return dbReq
}

func (r *HelpRequestRepositoryImpl) dbToDomain(dbReq *DBHelpRequest) *domain.HelpRequest {
	req := &domain.HelpRequest{
		ID:              dbReq.ID,
		ReporterContact: dbReq.ReporterContact,
		DisasterType:    dbReq.DisasterType,
		Description:     dbReq.Description,
		Severity:        domain.Severity(dbReq.Severity),
		ManualAddress:   dbReq.ManualAddress,
		Status:          domain.RequestStatus(dbReq.Status),
		Timestamp:       dbReq.Timestamp,
	}
	if dbReq.Lat != nil && dbReq.Lon != nil {
		req.Geolocation = &domain.GeoPoint{Lat: *dbReq.Lat, Lon: *dbReq.Lon}
	}
	return req
}
