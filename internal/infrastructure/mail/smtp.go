// Package mail delivers one-time passwords to users.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds connection settings for the outgoing mail server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends OTP emails through an authenticated SMTP server
type SMTPMailer struct {
	config SMTPConfig
}

// NewSMTPMailer creates a mailer for the given SMTP settings
func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// SendOTP emails the verification code to the address
func (m *SMTPMailer) SendOTP(ctx context.Context, email string, code int) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	msg := buildOTPMessage(m.config.From, email, code)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{email}, msg); err != nil {
		return fmt.Errorf("sending OTP mail to %s: %w", email, err)
	}
	return nil
}

// buildOTPMessage renders the verification email
func buildOTPMessage(from, to string, code int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your OTP for Account Verification\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your one-time password is %d.\r\n", code)
	b.WriteString("This code is valid for the next 10 minutes. Please do not share it with anyone.\r\n")
	return []byte(b.String())
}
