package processor

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"clientbridge-server/internal/observability"

	"go.uber.org/mock/gomock"
)

func tempFileCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}
	return len(entries)
}

func TestProcessRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := observability.NewLogger()
	ctx := context.Background()

	t.Run("round-trip returns transcript and reply", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), "audio/webm").
			DoAndReturn(func(_ context.Context, audio io.Reader, filename, _ string) (string, error) {
				if !strings.HasPrefix(filename, "recording-") || !strings.HasSuffix(filename, ".webm") {
					t.Errorf("unexpected transient filename: %s", filename)
				}
				data, err := io.ReadAll(audio)
				if err != nil {
					t.Fatalf("failed to read audio stream: %v", err)
				}
				if string(data) != "fake-opus-bytes" {
					t.Errorf("audio stream does not match upload")
				}
				// The transient file must exist while the provider reads it.
				if tempFileCount(t, dir) != 1 {
					t.Errorf("expected exactly one transient file during transcription")
				}
				return "hello assistant", nil
			})
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hello assistant").
			Return("hello caller", nil)

		result, err := p.ProcessRecording(ctx, []byte("fake-opus-bytes"), "recording.webm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Transcript != "hello assistant" {
			t.Errorf("unexpected transcript: %s", result.Transcript)
		}
		if result.Response != "hello caller" {
			t.Errorf("unexpected response: %s", result.Response)
		}
		if result.Audio != nil {
			t.Error("audio reply should be nil when synthesis is disabled")
		}
		if tempFileCount(t, dir) != 0 {
			t.Error("transient file leaked after success")
		}
	})

	t.Run("transient file removed on provider failure", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("whisper unavailable"))

		_, err := p.ProcessRecording(ctx, []byte("bytes"), "recording.webm")
		if !errors.Is(err, ErrTranscriptionFailed) {
			t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
		}
		if tempFileCount(t, dir) != 0 {
			t.Error("transient file leaked after provider failure")
		}
	})

	t.Run("transient file removed on reply failure", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("hello", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hello").
			Return("", errors.New("model overloaded"))

		result, err := p.ProcessRecording(ctx, []byte("bytes"), "recording.webm")
		if !errors.Is(err, ErrReplyGenerationFailed) {
			t.Fatalf("expected ErrReplyGenerationFailed, got %v", err)
		}
		if result.Transcript != "hello" {
			t.Errorf("transcript should be set even when reply fails, got %q", result.Transcript)
		}
		if tempFileCount(t, dir) != 0 {
			t.Error("transient file leaked after reply failure")
		}
	})

	t.Run("empty audio still runs the full round-trip", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "").
			Return("", nil)

		result, err := p.ProcessRecording(ctx, []byte{}, "recording.webm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Transcript != "" {
			t.Errorf("expected empty transcript, got %q", result.Transcript)
		}
		if result.Response == "" {
			t.Error("expected non-empty fallback response")
		}
	})

	t.Run("defaults extension for unnamed uploads", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), "audio/webm").
			Return("hi", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hi").
			Return("hello", nil)

		if _, err := p.ProcessRecording(ctx, []byte("bytes"), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wav uploads carry the wav content type", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir)

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), "audio/wav").
			Return("hi", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hi").
			Return("hello", nil)

		if _, err := p.ProcessRecording(ctx, []byte("bytes"), "clip.wav"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSpeechSynthesisStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := observability.NewLogger()
	ctx := context.Background()

	t.Run("successful synthesis returns base64 audio", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir).EnableSpeechSynthesis("nova")

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("hello", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hello").
			Return("hi there", nil)
		mockAI.EXPECT().
			SynthesizeSpeech(gomock.Any(), "hi there", "nova").
			Return([]byte("mp3-bytes"), nil)

		result, err := p.ProcessRecording(ctx, []byte("bytes"), "recording.webm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Audio == nil {
			t.Fatal("expected audio reply")
		}
		want := base64.StdEncoding.EncodeToString([]byte("mp3-bytes"))
		if *result.Audio != want {
			t.Errorf("unexpected audio payload")
		}
	})

	t.Run("synthesis failure degrades to text-only", func(t *testing.T) {
		dir := t.TempDir()
		mockAI := NewMockAIClient(ctrl)
		p := New(mockAI, logger).WithTempDir(dir).EnableSpeechSynthesis("")

		mockAI.EXPECT().
			Transcribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("hello", nil)
		mockAI.EXPECT().
			GenerateReply(gomock.Any(), gomock.Any(), "hello").
			Return("hi there", nil)
		mockAI.EXPECT().
			SynthesizeSpeech(gomock.Any(), "hi there", "alloy").
			Return(nil, errors.New("tts unavailable"))

		result, err := p.ProcessRecording(ctx, []byte("bytes"), "recording.webm")
		if err != nil {
			t.Fatalf("synthesis failure must not fail the request: %v", err)
		}
		if result.Audio != nil {
			t.Error("expected nil audio after synthesis failure")
		}
		if result.Response != "hi there" {
			t.Errorf("unexpected response: %s", result.Response)
		}
	})
}
