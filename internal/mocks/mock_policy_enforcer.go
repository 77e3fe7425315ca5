package mocks

import "github.com/you/dmhub/domain"

// MockPolicyEnforcer implements domain.PolicyEnforcer for testing
type MockPolicyEnforcer struct {
	EnforceFunc func(sub, obj, act string) (bool, error)
}

// NewMockPolicyEnforcer creates a new MockPolicyEnforcer allowing everything
func NewMockPolicyEnforcer() *MockPolicyEnforcer {
	return &MockPolicyEnforcer{}
}

func (m *MockPolicyEnforcer) Enforce(sub, obj, act string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(sub, obj, act)
	}
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyEnforcer = (*MockPolicyEnforcer)(nil)
