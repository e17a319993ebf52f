package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer abstracts the SMTP transport so the dispatcher can be tested without
// a mail server.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Verify(ctx context.Context) error
}

// SMTPMailer sends mail through an SMTP server using gomail.
type SMTPMailer struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
}

// NewSMTPMailer creates an SMTPMailer. No connection is made until Verify or
// the first Send.
func NewSMTPMailer(host string, port int, username, password, fromAddress, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(host, port, username, password),
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// Compile-time check to ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)

// Send delivers a single HTML email.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddress, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// Verify dials the SMTP server and closes the connection.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	closer, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	return closer.Close()
}
