package mail

import (
	"context"
	"fmt"

	"clientbridge-server/internal/observability"

	"gopkg.in/gomail.v2"
)

// SMTPClient delivers email through a plain SMTP relay. Port 465 uses an
// implicit-TLS connection; every other port upgrades opportunistically via
// STARTTLS (gomail's dialer handles both based on the port).
type SMTPClient struct {
	dialer *gomail.Dialer
	logger *observability.Logger
}

func NewSMTPClient(host string, port int, username, password string, logger *observability.Logger) (*SMTPClient, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	dialer := gomail.NewDialer(host, port, username, password)

	return &SMTPClient{
		dialer: dialer,
		logger: logger,
	}, nil
}

func (c *SMTPClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	if err := c.dialer.DialAndSend(msg); err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return nil
}
