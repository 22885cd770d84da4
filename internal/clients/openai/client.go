package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clientbridge-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const (
	chatModel        = openai.ChatModelGPT4
	replyTokenBudget = 150
	replyTemperature = 0.7
)

// Client wraps the OpenAI SDK for the three capabilities this service
// needs: speech-to-text, scripted chat replies and speech synthesis.
type Client struct {
	apiKey string
	client openai.Client
	logger *observability.Logger
}

func NewClient(apiKey string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	client := openai.NewClient(
		openaiOption.WithAPIKey(apiKey),
	)
	return &Client{apiKey: apiKey, client: client, logger: logger}, nil
}

// Transcribe sends audio to the Whisper API and returns the transcript.
// An empty transcript is a valid result, not an error.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename, contentType string) (string, error) {
	file := openai.File(audio, filename, contentType)
	params := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModelWhisper1,
		File:  file,
	}
	resp, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w", err)
	}
	return resp.Text, nil
}

// GenerateReply asks the chat model for a single assistant turn, bounded to
// a small token budget at fixed sampling temperature.
func (c *Client) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		MaxTokens:   openai.Int(replyTokenBudget),
		Temperature: openai.Float(replyTemperature),
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// SynthesizeSpeech uses OpenAI's TTS API to synthesize speech from text.
func (c *Client) SynthesizeSpeech(ctx context.Context, text string, voice string) ([]byte, error) {
	url := "https://api.openai.com/v1/audio/speech"
	jsonBody := map[string]interface{}{
		"model":           "tts-1",
		"voice":           voice, // e.g., "alloy", "echo", "fable", "onyx", "nova", "shimmer"
		"input":           text,
		"response_format": "mp3",
	}
	bodyBytes, err := json.Marshal(jsonBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TTS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OpenAI TTS error: %s", string(respBody))
	}

	return io.ReadAll(resp.Body)
}
