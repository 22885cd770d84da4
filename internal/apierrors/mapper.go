package apierrors

import (
	"errors"
	"strings"

	consultationProcessor "clientbridge-server/internal/consultation/processor"
	"clientbridge-server/internal/email"
	voicechatProcessor "clientbridge-server/internal/voicechat/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// Upstream provider failures keep their original message: the spec of this
// service is a single best-effort attempt whose failure text is shown to the
// user verbatim.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Voice chat processor errors
	case errors.Is(err, voicechatProcessor.ErrNoAudioFile):
		return BadRequest(CodeNoAudioFile, "No audio file provided")

	case errors.Is(err, voicechatProcessor.ErrTranscriptionFailed):
		return Internal(CodeTranscriptionError, err.Error(), err)

	case errors.Is(err, voicechatProcessor.ErrReplyGenerationFailed):
		return Internal(CodeReplyError, err.Error(), err)

	// Consultation processor errors
	case errors.Is(err, consultationProcessor.ErrEmptyNotification):
		return BadRequest(CodeEmptyNotification, "Nothing to notify: provide consultation details or a voice session")

	case errors.Is(err, consultationProcessor.ErrDeliveryFailed):
		return Internal(CodeEmailServiceError, err.Error(), err)

	// Email service errors
	case errors.Is(err, email.ErrSendingEmail):
		return Internal(CodeEmailServiceError, err.Error(), err)

	case errors.Is(err, email.ErrEmptyTemplate):
		return BadRequest(CodeEmptyNotification, "Notification email body is empty")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Mail relay errors
	if strings.Contains(errMsg, "smtp") || strings.Contains(errMsg, "mail") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// AI service errors (OpenAI)
	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "whisper") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return Internal(CodeInternal, err.Error(), err)
}
