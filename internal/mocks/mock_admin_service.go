package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockAdminService implements domain.AdminService for testing
type MockAdminService struct {
	BeginRegistrationFunc    func(ctx context.Context, email, phone, password string) error
	CompleteRegistrationFunc func(ctx context.Context, phone, code string) (*domain.AdminUser, error)
	BeginResetFunc           func(ctx context.Context, phone string) error
	CompleteResetFunc        func(ctx context.Context, phone, code, newPassword string) error
	LoginFunc                func(ctx context.Context, email, password string) (string, error)
	AuthorizeFunc            func(ctx context.Context, credential string) (*domain.AdminUser, error)
}

// NewMockAdminService creates a new MockAdminService with default behaviors
func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

func (m *MockAdminService) BeginRegistration(ctx context.Context, email, phone, password string) error {
	if m.BeginRegistrationFunc != nil {
		return m.BeginRegistrationFunc(ctx, email, phone, password)
	}
	return nil
}

func (m *MockAdminService) CompleteRegistration(ctx context.Context, phone, code string) (*domain.AdminUser, error) {
	if m.CompleteRegistrationFunc != nil {
		return m.CompleteRegistrationFunc(ctx, phone, code)
	}
	return &domain.AdminUser{Phone: phone}, nil
}

func (m *MockAdminService) BeginReset(ctx context.Context, phone string) error {
	if m.BeginResetFunc != nil {
		return m.BeginResetFunc(ctx, phone)
	}
	return nil
}

func (m *MockAdminService) CompleteReset(ctx context.Context, phone, code, newPassword string) error {
	if m.CompleteResetFunc != nil {
		return m.CompleteResetFunc(ctx, phone, code, newPassword)
	}
	return nil
}

func (m *MockAdminService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return email, nil
}

func (m *MockAdminService) Authorize(ctx context.Context, credential string) (*domain.AdminUser, error) {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, credential)
	}
	return nil, domain.ErrUnauthorized
}

// Compile-time interface compliance verification
var _ domain.AdminService = (*MockAdminService)(nil)
