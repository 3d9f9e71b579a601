// Package mailer dispatches password-recovery codes to a user's email
// address.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a one-time password to an address.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

// SendGridMailer delivers mail through the SendGrid API.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NewSendGridMailer builds a SendGrid-backed mailer.
func NewSendGridMailer(apiKey, fromAddr string) (*SendGridMailer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("sendgrid api key is required")
	}
	if strings.TrimSpace(fromAddr) == "" {
		return nil, errors.New("mail from address is required")
	}
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail("Job Board", fromAddr),
	}, nil
}

// SendOTP mails the recovery code. The code is valid for ten minutes.
func (m *SendGridMailer) SendOTP(ctx context.Context, to, code string) error {
	plain := fmt.Sprintf("Your password recovery code is %s. It expires in 10 minutes.", code)
	html := fmt.Sprintf("<p>Your password recovery code is <strong>%s</strong>.</p><p>It expires in 10 minutes.</p>", code)
	msg := sgmail.NewSingleEmail(m.from, "Password recovery code", sgmail.NewEmail("", to), plain, html)
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("send otp mail: sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// LogMailer logs instead of sending. Used when no SendGrid key is configured
// and in tests.
type LogMailer struct{}

// SendOTP logs the dispatch without revealing the code.
func (LogMailer) SendOTP(ctx context.Context, to, code string) error {
	slog.Info("otp dispatch skipped, no mail provider configured", "to", to)
	return nil
}
