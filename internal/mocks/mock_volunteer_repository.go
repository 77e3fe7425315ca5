package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockVolunteerRepository implements domain.VolunteerRepository for testing
type MockVolunteerRepository struct {
	CreateFunc               func(ctx context.Context, v *domain.Volunteer) error
	ExistsByEmailOrPhoneFunc func(ctx context.Context, email, phone string) (bool, error)
	FindByLocationKeyFunc    func(ctx context.Context, key string) ([]domain.Volunteer, error)
}

// NewMockVolunteerRepository creates a new MockVolunteerRepository with default behaviors
func NewMockVolunteerRepository() *MockVolunteerRepository {
	return &MockVolunteerRepository{}
}

func (m *MockVolunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *MockVolunteerRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	if m.ExistsByEmailOrPhoneFunc != nil {
		return m.ExistsByEmailOrPhoneFunc(ctx, email, phone)
	}
	return false, nil
}

func (m *MockVolunteerRepository) FindByLocationKey(ctx context.Context, key string) ([]domain.Volunteer, error) {
	if m.FindByLocationKeyFunc != nil {
		return m.FindByLocationKeyFunc(ctx, key)
	}
	return []domain.Volunteer{}, nil
}

// Compile-time interface compliance verification
var _ domain.VolunteerRepository = (*MockVolunteerRepository)(nil)
