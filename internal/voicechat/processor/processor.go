package processor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clientbridge-server/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrNoAudioFile           = errors.New("no audio file provided")
	ErrTranscriptionFailed   = errors.New("transcription failed")
	ErrReplyGenerationFailed = errors.New("reply generation failed")
)

// systemPrompt is the fixed persona for the consultation assistant.
const systemPrompt = `You are a helpful AI assistant for ClientBridge, a business consultation service. ` +
	`You should be friendly, professional, and helpful. Keep responses concise but informative. ` +
	`If someone asks about services, mention that you can help with business consultation, ` +
	`strategy planning, and connecting them with experts. Always be encouraging and supportive.`

// fallbackReply is returned when the model produces no text, including for
// an empty transcript.
const fallbackReply = "I'm sorry, I didn't catch that. Could you please repeat?"

// Result is the outcome of one voice chat round-trip. Audio is nil unless
// speech synthesis is enabled and succeeded.
type Result struct {
	Transcript string
	Response   string
	Audio      *string
}

type Processor struct {
	ai      AIClient
	logger  *observability.Logger
	tempDir string

	// Speech synthesis is an optional downstream stage with its own
	// failure mode: when it fails the result degrades to text-only.
	ttsEnabled bool
	ttsVoice   string
}

func New(ai AIClient, logger *observability.Logger) *Processor {
	return &Processor{
		ai:       ai,
		logger:   logger,
		tempDir:  os.TempDir(),
		ttsVoice: "alloy",
	}
}

// WithTempDir overrides where transient recordings are written.
func (p *Processor) WithTempDir(dir string) *Processor {
	p.tempDir = dir
	return p
}

// EnableSpeechSynthesis turns on the optional audio-reply stage.
func (p *Processor) EnableSpeechSynthesis(voice string) *Processor {
	p.ttsEnabled = true
	if voice != "" {
		p.ttsVoice = voice
	}
	return p
}

// ProcessRecording runs one recording through the round-trip: persist to a
// transient file, transcribe, generate the assistant reply, optionally
// synthesize speech. The transient file is removed on every exit path; a
// failed removal is logged but never changes the request outcome.
func (p *Processor) ProcessRecording(ctx context.Context, audio []byte, filename string) (Result, error) {
	var result Result

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".webm"
	}

	tempPath := filepath.Join(p.tempDir, fmt.Sprintf("recording-%s%s", uuid.New().String(), ext))
	if err := os.WriteFile(tempPath, audio, 0o600); err != nil {
		p.logger.Error(ctx, "failed to write transient recording", err)
		return result, fmt.Errorf("%w: %s", ErrTranscriptionFailed, err.Error())
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			p.logger.Error(ctx, "failed to remove transient recording", err)
		}
	}()

	ctx = observability.WithFields(ctx, observability.Field{Key: "recording_bytes", Value: len(audio)})

	file, err := os.Open(tempPath)
	if err != nil {
		p.logger.Error(ctx, "failed to open transient recording", err)
		return result, fmt.Errorf("%w: %s", ErrTranscriptionFailed, err.Error())
	}
	defer file.Close()

	transcript, err := p.ai.Transcribe(ctx, file, filepath.Base(tempPath), contentTypeForExt(ext))
	if err != nil {
		p.logger.Error(ctx, "speech-to-text provider call failed", err)
		return result, fmt.Errorf("%w: %s", ErrTranscriptionFailed, err.Error())
	}
	result.Transcript = transcript

	// An empty transcript is valid; the assistant still gets a turn.
	reply, err := p.ai.GenerateReply(ctx, systemPrompt, transcript)
	if err != nil {
		p.logger.Error(ctx, "language-model provider call failed", err)
		return result, fmt.Errorf("%w: %s", ErrReplyGenerationFailed, err.Error())
	}
	if reply == "" {
		reply = fallbackReply
	}
	result.Response = reply

	if p.ttsEnabled {
		result.Audio = p.synthesize(ctx, reply)
	}

	return result, nil
}

// synthesize runs the optional audio-reply stage. Failure falls back to
// text-only output without failing the request.
func (p *Processor) synthesize(ctx context.Context, reply string) *string {
	audio, err := p.ai.SynthesizeSpeech(ctx, reply, p.ttsVoice)
	if err != nil {
		p.logger.Error(ctx, "speech synthesis failed, falling back to text-only reply", err)
		return nil
	}
	encoded := base64.StdEncoding.EncodeToString(audio)
	return &encoded
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	default:
		return "audio/webm"
	}
}
