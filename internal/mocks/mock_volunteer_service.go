package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockVolunteerService implements domain.VolunteerService for testing
type MockVolunteerService struct {
	RegisterFunc func(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error)
}

// NewMockVolunteerService creates a new MockVolunteerService with default behaviors
func NewMockVolunteerService() *MockVolunteerService {
	return &MockVolunteerService{}
}

func (m *MockVolunteerService) Register(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, v)
	}
	return v, nil
}

// Compile-time interface compliance verification
var _ domain.VolunteerService = (*MockVolunteerService)(nil)
