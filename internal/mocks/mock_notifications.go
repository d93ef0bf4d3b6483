package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendFunc func(ctx context.Context, to, subject, plainBody, htmlBody string) error

	// Sent records every delivery attempted through the default behavior
	Sent []SentEmail
}

// SentEmail captures one recorded delivery
type SentEmail struct {
	To      string
	Subject string
	Plain   string
	HTML    string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send sends (records) an email
func (m *MockMailer) Send(ctx context.Context, to, subject, plainBody, htmlBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, plainBody, htmlBody)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Plain: plainBody, HTML: htmlBody})
	return nil
}

// MockSMSSender implements domain.SMSSender interface for testing
type MockSMSSender struct {
	SendSMSFunc func(to, message string) error

	// SentTo records recipients of deliveries through the default behavior
	SentTo []string
}

// NewMockSMSSender creates a new MockSMSSender with default behaviors
func NewMockSMSSender() *MockSMSSender {
	return &MockSMSSender{}
}

// SendSMS sends (records) an SMS
func (m *MockSMSSender) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: record and succeed
	m.SentTo = append(m.SentTo, to)
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.Mailer    = (*MockMailer)(nil)
	_ domain.SMSSender = (*MockSMSSender)(nil)
)
