package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an unusable OpenAI response.
	ErrOpenAIResponse = errors.New("unusable OpenAI response")
)

// MaxAudioSize caps uploads to the transcription endpoint (25MB).
const MaxAudioSize = 25 * 1024 * 1024

// OpenAIClient wraps the OpenAI API for chat completion and transcription.
// The analysis pipeline creates a fresh client per call; the SDK client
// underneath is cheap to construct.
type OpenAIClient struct {
	client          openai.Client
	model           string
	transcribeModel string
}

// NewOpenAIClient creates a new OpenAI client. Returns nil if apiKey is
// empty; callers treat a nil client as "model unavailable".
func NewOpenAIClient(apiKey, model, transcribeModel string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if transcribeModel == "" {
		transcribeModel = "whisper-1"
	}
	return &OpenAIClient{
		client:          openai.NewClient(option.WithAPIKey(apiKey)),
		model:           model,
		transcribeModel: transcribeModel,
	}
}

// Complete sends a single-turn prompt and returns the raw completion text.
// maxTokens <= 0 leaves the limit unset.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe runs speech-to-text over the given audio stream.
func (c *OpenAIClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	resp, err := c.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model:    openai.AudioModel(c.transcribeModel),
		File:     openai.File(audio, filename, "application/octet-stream"),
		Language: openai.String("en"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	return resp.Text, nil
}
