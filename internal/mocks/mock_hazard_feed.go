package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockHazardFeed implements domain.HazardFeed for testing
type MockHazardFeed struct {
	ActiveEventsFunc func(ctx context.Context) ([]domain.HazardEvent, error)
}

// NewMockHazardFeed creates a new MockHazardFeed with default behaviors
func NewMockHazardFeed() *MockHazardFeed {
	return &MockHazardFeed{}
}

func (m *MockHazardFeed) ActiveEvents(ctx context.Context) ([]domain.HazardEvent, error) {
	if m.ActiveEventsFunc != nil {
		return m.ActiveEventsFunc(ctx)
	}
	return []domain.HazardEvent{}, nil
}

// Compile-time interface compliance verification
var _ domain.HazardFeed = (*MockHazardFeed)(nil)
