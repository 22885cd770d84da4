package apierrors

import "net/http"

// Error codes returned to API clients
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNoAudioFile        = "NO_AUDIO_FILE"
	CodeEmptyNotification  = "EMPTY_NOTIFICATION"
	CodeTranscriptionError = "TRANSCRIPTION_ERROR"
	CodeReplyError         = "REPLY_ERROR"
	CodeEmailServiceError  = "EMAIL_SERVICE_ERROR"
	CodeAIServiceError     = "AI_SERVICE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// APIError carries the HTTP status, machine-readable code and user-facing
// message for a failed request.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Internal builds a 500 error. Provider failures are surfaced with their
// original message so the voice UI can display them directly.
func Internal(code, message string, internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       code,
		Message:    message,
		Internal:   internalErr,
	}
}

// ServiceUnavailable builds a 503 error
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       code,
		Message:    message,
		Internal:   internalErr,
	}
}
