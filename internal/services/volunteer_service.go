package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var volunteerLog = logrus.WithField("prefix", "volunteer")

// VolunteerServiceImpl implements domain.VolunteerService.
type VolunteerServiceImpl struct {
	repo domain.VolunteerRepository
}

// NewVolunteerService creates a new volunteer service.
func NewVolunteerService(repo domain.VolunteerRepository) *VolunteerServiceImpl {
	return &VolunteerServiceImpl{repo: repo}
}

// Register implements domain.VolunteerService. Volunteers are immutable
// after registration; there is no update or delete path.
func (s *VolunteerServiceImpl) Register(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	if v.Name == "" || v.Email == "" || v.Phone == "" || v.Location == "" {
		return nil, domain.ErrMissingField
	}

	exists, err := s.repo.ExistsByEmailOrPhone(ctx, v.Email, v.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyRegistered
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	volunteerLog.WithFields(logrus.Fields{"email": v.Email, "location": v.Location}).Info("volunteer registered")
	return v, nil
}
