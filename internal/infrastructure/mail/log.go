package mail

import (
	"context"
	"log"
)

// LogMailer writes OTP codes to the server log instead of sending email.
// Used in development so the flow can be exercised without SMTP credentials.
type LogMailer struct{}

// NewLogMailer creates a log-only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOTP logs the code that would have been emailed
func (m *LogMailer) SendOTP(ctx context.Context, email string, code int) error {
	log.Printf("[MAIL] OTP for %s: %d", email, code)
	return nil
}
