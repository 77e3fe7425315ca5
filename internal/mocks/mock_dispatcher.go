package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockDispatcher implements domain.Dispatcher for testing. Dispatched is
// buffered so tests can wait on the asynchronous launch.
type MockDispatcher struct {
	DispatchFunc func(ctx context.Context, req *domain.HelpRequest)
	Dispatched   chan *domain.HelpRequest
}

// NewMockDispatcher creates a new MockDispatcher with default behaviors
func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{Dispatched: make(chan *domain.HelpRequest, 8)}
}

func (m *MockDispatcher) Dispatch(ctx context.Context, req *domain.HelpRequest) {
	if m.DispatchFunc != nil {
		m.DispatchFunc(ctx, req)
		return
	}
	m.Dispatched <- req
}

// Compile-time interface compliance verification
var _ domain.Dispatcher = (*MockDispatcher)(nil)
