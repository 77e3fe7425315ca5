package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockHelpRequestService implements domain.HelpRequestService for testing
type MockHelpRequestService struct {
	SubmitFunc       func(ctx context.Context, input domain.SubmitHelpInput) (*domain.HelpRequest, error)
	ListActiveFunc   func(ctx context.Context) ([]domain.HelpRequest, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error)
}

// NewMockHelpRequestService creates a new MockHelpRequestService with default behaviors
func NewMockHelpRequestService() *MockHelpRequestService {
	return &MockHelpRequestService{}
}

func (m *MockHelpRequestService) Submit(ctx context.Context, input domain.SubmitHelpInput) (*domain.HelpRequest, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, input)
	}
	return &domain.HelpRequest{ID: "test-request-id", Status: domain.StatusPending}, nil
}

func (m *MockHelpRequestService) ListActive(ctx context.Context) ([]domain.HelpRequest, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []domain.HelpRequest{}, nil
}

func (m *MockHelpRequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, domain.ErrRequestNotFound
}

// Compile-time interface compliance verification
var _ domain.HelpRequestService = (*MockHelpRequestService)(nil)
