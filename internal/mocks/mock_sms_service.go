package mocks

import (
	"sync"

	"github.com/you/dmhub/domain"
)

// MockSMSService implements domain.SMSService for testing. Sent messages
// are recorded under a mutex so concurrent fan-out tests can inspect them.
type MockSMSService struct {
	SendSMSFunc func(to, body string) error

	mu   sync.Mutex
	sent []SentSMS
}

// SentSMS is one recorded send attempt.
type SentSMS struct {
	To   string
	Body string
}

// NewMockSMSService creates a new MockSMSService with default behaviors
func NewMockSMSService() *MockSMSService {
	return &MockSMSService{}
}

func (m *MockSMSService) SendSMS(to, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentSMS{To: to, Body: body})
	m.mu.Unlock()

	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, body)
	}
	return nil
}

// Sent returns a copy of all recorded send attempts.
func (m *MockSMSService) Sent() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentSMS, len(m.sent))
	copy(out, m.sent)
	return out
}

// Compile-time interface compliance verification
var _ domain.SMSService = (*MockSMSService)(nil)
