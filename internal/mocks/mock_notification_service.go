package mocks

import (
	"sync"

	"github.com/seabasket/seabasket-api/domain"
)

// MockNotificationService implements domain.NotificationService
// interface for testing. Sent messages are recorded for assertions;
// recording is synchronized because sign-up notifies off-goroutine.
type MockNotificationService struct {
	SendEmailFunc func(to, subject, body string) error
	SendSMSFunc   func(to, message string) error

	mu         sync.Mutex
	SentEmails []SentEmail
	SentSMS    []SentSMS
}

// SentEmail records one delivered email
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// SentSMS records one delivered SMS
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail delivers an email
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: record and succeed
	m.mu.Lock()
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	return nil
}

// SendSMS delivers an SMS
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: record and succeed
	m.mu.Lock()
	m.SentSMS = append(m.SentSMS, SentSMS{To: to, Message: message})
	m.mu.Unlock()
	return nil
}

// EmailCount returns how many emails have been recorded
func (m *MockNotificationService) EmailCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SentEmails)
}

// LastEmail returns the most recently recorded email
func (m *MockNotificationService) LastEmail() (SentEmail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SentEmails) == 0 {
		return SentEmail{}, false
	}
	return m.SentEmails[len(m.SentEmails)-1], true
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
