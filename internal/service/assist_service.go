package service

import (
	"context"
	"io"

	"github.com/signal-au/signal-api/internal/analysis"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/llm"
)

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// AssistService covers the lightweight helpers around the check-in form:
// clarifying questions, topic coverage, and speech-to-text.
type AssistService interface {
	Clarify(ctx context.Context, text string) *domain.ClarifyResponse
	CheckTopics(ctx context.Context, text string) *domain.CheckTopicsResponse
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type assistService struct {
	factory     analysis.Factory
	transcriber Transcriber
}

// NewAssistService creates a new AssistService. Both arguments may be nil;
// helpers then degrade to their keyword fallbacks and transcription reports
// unavailable.
func NewAssistService(factory analysis.Factory, transcriber Transcriber) AssistService {
	return &assistService{
		factory:     factory,
		transcriber: transcriber,
	}
}

func (s *assistService) Clarify(ctx context.Context, text string) *domain.ClarifyResponse {
	text = domain.SanitizeText(text, domain.MaxTranscriptLen)

	questions, source, err := analysis.ClarifyQuestions(ctx, s.completer(), text)
	resp := &domain.ClarifyResponse{
		Questions: questions,
		Source:    source,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func (s *assistService) CheckTopics(ctx context.Context, text string) *domain.CheckTopicsResponse {
	text = domain.SanitizeText(text, domain.MaxTranscriptLen)

	return &domain.CheckTopicsResponse{
		Missing: analysis.MissingTopics(ctx, s.completer(), text),
	}
}

func (s *assistService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if s.transcriber == nil {
		return "", llm.ErrOpenAIUnavailable
	}
	return s.transcriber.Transcribe(ctx, audio, filename)
}

func (s *assistService) completer() analysis.Completer {
	if s.factory == nil {
		return nil
	}
	return s.factory()
}
