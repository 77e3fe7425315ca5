package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockAdminRepository implements domain.AdminRepository for testing
type MockAdminRepository struct {
	CreateFunc         func(ctx context.Context, admin *domain.AdminUser) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.AdminUser, error)
	FindByPhoneFunc    func(ctx context.Context, phone string) (*domain.AdminUser, error)
	ListAllFunc        func(ctx context.Context) ([]domain.AdminUser, error)
	UpdatePasswordFunc func(ctx context.Context, phone, passwordHash string) error
}

// NewMockAdminRepository creates a new MockAdminRepository with default behaviors
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.AdminUser) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrAdminNotFound
}

func (m *MockAdminRepository) FindByPhone(ctx context.Context, phone string) (*domain.AdminUser, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrAdminNotFound
}

func (m *MockAdminRepository) ListAll(ctx context.Context) ([]domain.AdminUser, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []domain.AdminUser{}, nil
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, phone, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, phone, passwordHash)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AdminRepository = (*MockAdminRepository)(nil)
