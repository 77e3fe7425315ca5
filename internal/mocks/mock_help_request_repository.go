package mocks

import (
	"context"
	"time"

	"github.com/you/dmhub/domain"
)

// MockHelpRequestRepository implements domain.HelpRequestRepository for testing
type MockHelpRequestRepository struct {
	CreateFunc       func(ctx context.Context, req *domain.HelpRequest) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.HelpRequest, error)
	ListActiveFunc   func(ctx context.Context, completedSince time.Time, limit int) ([]domain.HelpRequest, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error)
}

// NewMockHelpRequestRepository creates a new MockHelpRequestRepository with default behaviors
func NewMockHelpRequestRepository() *MockHelpRequestRepository {
	return &MockHelpRequestRepository{}
}

func (m *MockHelpRequestRepository) Create(ctx context.Context, req *domain.HelpRequest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	if req.ID == "" {
		req.ID = "test-request-id"
	}
	return nil
}

func (m *MockHelpRequestRepository) FindByID(ctx context.Context, id string) (*domain.HelpRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRequestNotFound
}

func (m *MockHelpRequestRepository) ListActive(ctx context.Context, completedSince time.Time, limit int) ([]domain.HelpRequest, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, completedSince, limit)
	}
	return []domain.HelpRequest{}, nil
}

func (m *MockHelpRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, domain.ErrRequestNotFound
}

// Compile-time interface compliance verification
var _ domain.HelpRequestRepository = (*MockHelpRequestRepository)(nil)
