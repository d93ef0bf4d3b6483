package notifications

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/you/shopsvc/domain"
)

// SendGridMailer implements domain.Mailer
type SendGridMailer struct {
	client   *sendgrid.Client
	fromAddr string
	fromName string
}

// NewSendGridMailer creates a new SendGrid-backed mailer
func NewSendGridMailer(apiKey, fromAddr, fromName string) domain.Mailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromAddr: fromAddr,
		fromName: fromName,
	}
}

// Send implements domain.Mailer
func (m *SendGridMailer) Send(ctx context.Context, to, subject, plainBody, htmlBody string) error {
	// Without a sender configured, log instead of sending
	if m.fromAddr == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromAddr)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainBody, htmlBody)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned status %d", response.StatusCode)
	}

	return nil
}
