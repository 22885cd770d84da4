package bootstrap

import (
	"context"
	"fmt"

	"clientbridge-server/internal/clients/mail"
	openaiClient "clientbridge-server/internal/clients/openai"
	"clientbridge-server/internal/config"
	consultationHandler "clientbridge-server/internal/consultation/handler"
	consultationProcessor "clientbridge-server/internal/consultation/processor"
	"clientbridge-server/internal/email"
	"clientbridge-server/internal/observability"
	voicechatHandler "clientbridge-server/internal/voicechat/handler"
	voicechatProcessor "clientbridge-server/internal/voicechat/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger *observability.Logger

	ConsultationHandler consultationHandler.Handler
	VoiceChatHandler    voicechatHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize clients
	aiClient, err := openaiClient.NewClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	mailClient, err := mail.NewSMTPClient(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Sender, cfg.Mail.Password, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	// Initialize email service
	emailService := email.New(mailClient, cfg.Mail.Sender, logger)

	// Initialize consultation processor and handler
	consultationProc := consultationProcessor.New(emailService, cfg.Mail.InternalRecipient, logger)
	deps.ConsultationHandler = consultationHandler.New(consultationProc, logger)

	// Initialize voice chat processor and handler
	voicechatProc := voicechatProcessor.New(aiClient, logger)
	if cfg.Services.TTSVoice != "" {
		voicechatProc = voicechatProc.EnableSpeechSynthesis(cfg.Services.TTSVoice)
	}
	deps.VoiceChatHandler = voicechatHandler.New(voicechatProc, logger)

	return deps, nil
}
