package processor

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=processor

// AIClient covers the external speech and language capabilities used by the
// voice chat round-trip.
type AIClient interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error)
	GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error)
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
}
