package processor

import (
	"context"

	"clientbridge-server/internal/email"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=processor

// NotificationEmailService renders and delivers the notification emails
// derived from a consultation submission or voice session.
type NotificationEmailService interface {
	SendConsultationConfirmation(ctx context.Context, to string, data email.TemplateData) error
	SendConsultationNotification(ctx context.Context, to string, data email.TemplateData) error
	SendVoiceSessionNotification(ctx context.Context, to string, data email.TemplateData) error
}
