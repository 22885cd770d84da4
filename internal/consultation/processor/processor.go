package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"clientbridge-server/internal/email"
	"clientbridge-server/internal/observability"
)

var (
	ErrEmptyNotification = errors.New("nothing to notify")
	ErrDeliveryFailed    = errors.New("notification delivery failed")
)

// Submission is the lead-capture payload. Every field is optional at the
// wire; the processor decides which notification shape it resolves to.
type Submission struct {
	FullName      string
	Email         string
	ABN           string
	BusinessGoals string
	Budget        float64
	ContactMethod string
	Transcript    string
	AgentResponse string
}

// isForm reports whether the submission carries a contact-form shape:
// a client identity we can send a confirmation to.
func (s Submission) isForm() bool {
	return s.FullName != "" && s.Email != ""
}

// isVoiceSession reports whether the submission carries voice session data.
func (s Submission) isVoiceSession() bool {
	return s.Transcript != "" || s.AgentResponse != ""
}

// DeliveryResult tracks each delivery attempt independently so a partial
// success is visible to the caller instead of being collapsed into one
// boolean.
type DeliveryResult struct {
	ClientSent   bool
	InternalSent bool
	Errors       []string
}

type Processor struct {
	emailService      NotificationEmailService
	internalRecipient string
	logger            *observability.Logger
}

func New(emailService NotificationEmailService, internalRecipient string, logger *observability.Logger) *Processor {
	return &Processor{
		emailService:      emailService,
		internalRecipient: internalRecipient,
		logger:            logger,
	}
}

// Notify derives the notification emails from the submission and attempts
// the deliveries. Form submissions with a client email produce two
// concurrent sends (client confirmation + internal notification); voice
// sessions without a client email produce a single internal notification.
// Each submission is notified independently; duplicates are not deduplicated.
func (p *Processor) Notify(ctx context.Context, sub Submission) (DeliveryResult, error) {
	var result DeliveryResult

	if !sub.isForm() && !sub.isVoiceSession() {
		p.logger.Error(ctx, "submission resolves to no notification shape", ErrEmptyNotification)
		return result, ErrEmptyNotification
	}

	data := email.TemplateData{
		FullName:      sub.FullName,
		Email:         sub.Email,
		ABN:           sub.ABN,
		BusinessGoals: sub.BusinessGoals,
		Budget:        sub.Budget,
		ContactMethod: sub.ContactMethod,
		Transcript:    sub.Transcript,
		AgentResponse: sub.AgentResponse,
	}

	if sub.isForm() {
		p.notifyForm(ctx, sub, data, &result)
	} else {
		p.notifyVoiceSession(ctx, data, &result)
	}

	if len(result.Errors) > 0 {
		return result, fmt.Errorf("%w: %s", ErrDeliveryFailed, strings.Join(result.Errors, "; "))
	}
	return result, nil
}

// notifyForm attempts the client confirmation and the internal notification
// concurrently and records each outcome.
func (p *Processor) notifyForm(ctx context.Context, sub Submission, data email.TemplateData, result *DeliveryResult) {
	var (
		wg                     sync.WaitGroup
		clientErr, internalErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		clientErr = p.emailService.SendConsultationConfirmation(ctx, sub.Email, data)
	}()

	if p.internalRecipient != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			internalErr = p.emailService.SendConsultationNotification(ctx, p.internalRecipient, data)
		}()
	}

	wg.Wait()

	if clientErr != nil {
		p.logger.Error(ctx, "client confirmation delivery failed", clientErr)
		result.Errors = append(result.Errors, clientErr.Error())
	} else {
		result.ClientSent = true
	}

	if p.internalRecipient != "" {
		if internalErr != nil {
			p.logger.Error(ctx, "internal notification delivery failed", internalErr)
			result.Errors = append(result.Errors, internalErr.Error())
		} else {
			result.InternalSent = true
		}
	}
}

// notifyVoiceSession attempts the single internal notification.
func (p *Processor) notifyVoiceSession(ctx context.Context, data email.TemplateData, result *DeliveryResult) {
	if p.internalRecipient == "" {
		p.logger.Warn(ctx, "no internal recipient configured, dropping voice session notification")
		return
	}

	if err := p.emailService.SendVoiceSessionNotification(ctx, p.internalRecipient, data); err != nil {
		p.logger.Error(ctx, "voice session notification delivery failed", err)
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.InternalSent = true
}
