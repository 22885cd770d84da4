package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"clientbridge-server/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// MailSender delivers a single rendered email through the configured relay.
type MailSender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) error
}

// EmailService renders and sends the notification emails
type EmailService struct {
	mailClient    MailSender
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	FullName      string
	Email         string
	ABN           string
	BusinessGoals string
	Budget        float64
	ContactMethod string
	Transcript    string
	AgentResponse string
}

// New creates a new EmailService
func New(mailClient MailSender, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"consultation_confirmation": `
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #2563eb;">Thank you for choosing ClientBridge!</h2>
				<p>Dear {{.FullName}},</p>
				<p>Thank you for submitting your business consultation request. We've received your information and our team will review it carefully.</p>
				<h3 style="color: #374151;">Your Consultation Details:</h3>
				<ul style="background: #f9fafb; padding: 20px; border-radius: 8px;">
					<li><strong>Name:</strong> {{.FullName}}</li>
					<li><strong>Email:</strong> {{.Email}}</li>
					{{if .ABN}}<li><strong>ABN:</strong> {{.ABN}}</li>{{end}}
					<li><strong>Business Goals:</strong> {{.BusinessGoals}}</li>
					<li><strong>Budget:</strong> ${{.Budget}} AUD</li>
					<li><strong>Preferred Contact:</strong> {{.ContactMethod}}</li>
				</ul>
				<h3 style="color: #374151;">What happens next?</h3>
				<ol>
					<li>Our team will review your consultation request within 24 hours</li>
					<li>We'll contact you via your preferred method ({{.ContactMethod}})</li>
					<li>We'll schedule a detailed consultation session</li>
					<li>You'll receive a personalized business strategy</li>
				</ol>
				<p>If you have any questions in the meantime, please don't hesitate to reach out to us.</p>
				<p>Best regards,<br><strong>The ClientBridge Team</strong></p>
				<hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
				<p style="font-size: 12px; color: #6b7280;">
					This email was sent from ClientBridge - Your AI-powered business consultation platform.
				</p>
			</div>
			`,
			"consultation_notification": `
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #dc2626;">New Client Consultation Request</h2>
				<h3 style="color: #374151;">Client Information:</h3>
				<ul style="background: #fef2f2; padding: 20px; border-radius: 8px;">
					<li><strong>Full Name:</strong> {{.FullName}}</li>
					<li><strong>Email:</strong> {{.Email}}</li>
					{{if .ABN}}<li><strong>ABN:</strong> {{.ABN}}</li>{{end}}
					<li><strong>Business Goals:</strong> {{.BusinessGoals}}</li>
					<li><strong>Budget:</strong> ${{.Budget}} AUD</li>
					<li><strong>Preferred Contact Method:</strong> {{.ContactMethod}}</li>
				</ul>
				{{if .Transcript}}
				<h3 style="color: #374151;">Voice Session:</h3>
				<p><strong>Transcript:</strong> {{.Transcript}}</p>
				{{if .AgentResponse}}<p><strong>Assistant Reply:</strong> {{.AgentResponse}}</p>{{end}}
				{{end}}
				<h3 style="color: #374151;">Action Required:</h3>
				<p>Please review this consultation request and contact the client within 24 hours via their preferred method: <strong>{{.ContactMethod}}</strong></p>
				<p><strong>Client Email:</strong> {{.Email}}</p>
				<hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
				<p style="font-size: 12px; color: #6b7280;">
					This notification was sent from ClientBridge - Your AI-powered business consultation platform.
				</p>
			</div>
			`,
			"voice_session_notification": `
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #dc2626;">New Voice Session</h2>
				<p>A visitor spoke with the ClientBridge voice assistant.</p>
				{{if .Transcript}}<p><strong>Transcript:</strong> {{.Transcript}}</p>{{end}}
				{{if .AgentResponse}}<p><strong>Assistant Reply:</strong> {{.AgentResponse}}</p>{{end}}
				{{if .Email}}<p><strong>Contact Email:</strong> {{.Email}}</p>{{end}}
				<hr style="margin: 30px 0; border: none; border-top: 1px solid #e5e7eb;">
				<p style="font-size: 12px; color: #6b7280;">
					This notification was sent from ClientBridge - Your AI-powered business consultation platform.
				</p>
			</div>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendConsultationConfirmation sends the confirmation email to the client
// who submitted the consultation form.
func (s *EmailService) SendConsultationConfirmation(ctx context.Context, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "consultation_confirmation"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Thank you for your consultation request, %s!", data.FullName)

	htmlContent, err := s.renderTemplate("consultation_confirmation", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render consultation confirmation template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send consultation confirmation email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendConsultationNotification sends the internal notification for a new
// consultation request.
func (s *EmailService) SendConsultationNotification(ctx context.Context, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "consultation_notification"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("New Client Consultation Request - %s", data.FullName)

	htmlContent, err := s.renderTemplate("consultation_notification", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render consultation notification template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send consultation notification email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendVoiceSessionNotification sends the internal notification for a voice
// session that did not include a client email.
func (s *EmailService) SendVoiceSessionNotification(ctx context.Context, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "voice_session_notification"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := "New Voice Session - ClientBridge"

	htmlContent, err := s.renderTemplate("voice_session_notification", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render voice session notification template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send voice session notification email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
