package mocks

import (
	"context"

	"github.com/you/dmhub/domain"
)

// MockOtpStore implements domain.OtpStore for testing
type MockOtpStore struct {
	PutFunc     func(ctx context.Context, challenge *domain.OtpChallenge) error
	ConsumeFunc func(ctx context.Context, phone, code string) (*domain.OtpChallenge, error)
}

// NewMockOtpStore creates a new MockOtpStore with default behaviors
func NewMockOtpStore() *MockOtpStore {
	return &MockOtpStore{}
}

func (m *MockOtpStore) Put(ctx context.Context, challenge *domain.OtpChallenge) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, challenge)
	}
	return nil
}

func (m *MockOtpStore) Consume(ctx context.Context, phone, code string) (*domain.OtpChallenge, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, phone, code)
	}
	return nil, domain.ErrInvalidOrExpiredOTP
}

// Compile-time interface compliance verification
var _ domain.OtpStore = (*MockOtpStore)(nil)
