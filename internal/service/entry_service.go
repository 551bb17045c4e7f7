package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signal-au/signal-api/internal/analysis"
	"github.com/signal-au/signal-api/internal/crypto"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/repository"
	"github.com/signal-au/signal-api/pkg/pagination"
)

// EntryService runs the daily reflection flow: gate, analysis, persistence.
type EntryService interface {
	// Analyze processes a daily reflection. When the missing-answer gate
	// fires, the response carries a clarifying question and no entry is
	// stored.
	Analyze(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.EntryResponse, error)
}

type entryService struct {
	repo     repository.EntryRepository
	pipeline *analysis.Pipeline
	factory  analysis.Factory
	cipher   *crypto.Cipher
}

// NewEntryService creates a new EntryService. A nil cipher stores fields as
// plaintext; a nil-returning factory degrades every request to the fallback
// path.
func NewEntryService(repo repository.EntryRepository, factory analysis.Factory, cipher *crypto.Cipher) EntryService {
	return &entryService{
		repo:     repo,
		pipeline: analysis.NewPipeline(factory),
		factory:  factory,
		cipher:   cipher,
	}
}

func (s *entryService) Analyze(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	tracer := otel.Tracer("signal-api/analysis")
	ctx, span := tracer.Start(ctx, "EntryService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("entry.date", req.Date),
		),
	)
	defer span.End()

	input := domain.ReflectionInput{
		Transcript:     domain.SanitizeText(req.Transcript, domain.MaxTranscriptLen),
		SleepHours:     domain.ClampFloat(req.SleepHours, 0, 24),
		SleepQuality:   domain.ClampInt(req.SleepQuality, 1, 5),
		Energy:         domain.ClampInt(req.Energy, 1, 5),
		DeepWorkBlocks: domain.ClampInt(req.DeepWorkBlocks, 0, 5),
	}

	// Ask for a missing critical answer before spending a full analysis
	// call. Overwrites and follow-up answers skip the gate.
	if !req.SkipMissingCheck && !req.Overwrite {
		if question := analysis.NeedsClarification(ctx, s.completer(), input); question != "" {
			span.SetAttributes(attribute.String("gate.question", question))
			return &domain.AnalyzeResponse{NeedsAnswer: question}, nil
		}
	}

	result := s.pipeline.Analyze(ctx, input)
	if result.IsFallback() {
		// Placeholder analyses are never stored; the caller retries later.
		span.SetAttributes(attribute.Bool("analysis.fallback", true))
		return nil, domain.ErrAnalysisUnavailable
	}

	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	existing, err := s.repo.FindByUserAndDate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}

	if existing != nil && !req.Overwrite {
		return nil, domain.ErrEntryExists
	}

	drivers := make([]string, len(result.LikelyDrivers))
	for i, d := range result.LikelyDrivers {
		drivers[i] = s.cipher.Encrypt(d)
	}

	if existing != nil {
		existing.SleepHours = input.SleepHours
		existing.SleepQuality = input.SleepQuality
		existing.Energy = input.Energy
		existing.DeepWorkBlocks = input.DeepWorkBlocks
		existing.Transcript = s.cipher.Encrypt(input.Transcript)
		existing.ReflectionSummary = s.cipher.Encrypt(result.ReflectionSummary)
		existing.LikelyDrivers = drivers
		existing.PredictedImpact = s.cipher.Encrypt(result.PredictedImpact)
		existing.ExperimentForTomorrow = s.cipher.Encrypt(result.ExperimentForTomorrow)
		existing.IsFollowUp = req.IsFollowUp

		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &domain.AnalyzeResponse{EntryID: existing.ID.String(), Analysis: &result}, nil
	}

	count, err := s.repo.CountForDate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		UserID:                userID,
		Date:                  req.Date,
		SleepHours:            input.SleepHours,
		SleepQuality:          input.SleepQuality,
		Energy:                input.Energy,
		DeepWorkBlocks:        input.DeepWorkBlocks,
		Transcript:            s.cipher.Encrypt(input.Transcript),
		ReflectionSummary:     s.cipher.Encrypt(result.ReflectionSummary),
		LikelyDrivers:         drivers,
		PredictedImpact:       s.cipher.Encrypt(result.PredictedImpact),
		ExperimentForTomorrow: s.cipher.Encrypt(result.ExperimentForTomorrow),
		EntryNumber:           int(count) + 1,
		IsFollowUp:            req.IsFollowUp,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &domain.AnalyzeResponse{EntryID: entry.ID.String(), Analysis: &result}, nil
}

func (s *entryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.EntryListResponse{
		Data: make([]domain.EntrySummary, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range entries {
		summary := entries[i].ToSummary()
		summary.ReflectionSummary = s.cipher.SafeDecrypt(summary.ReflectionSummary)
		response.Data[i] = summary
	}

	// Set next cursor if there are more results
	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *entryService) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.EntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	// Entries are private to their owner
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}

	drivers := make([]string, len(entry.LikelyDrivers))
	for i, d := range entry.LikelyDrivers {
		drivers[i] = s.cipher.SafeDecrypt(d)
	}

	isFinal := true
	if latest, err := s.repo.FindByUserAndDate(ctx, userID, entry.Date); err == nil && latest != nil {
		isFinal = latest.ID == entry.ID
	}

	return &domain.EntryResponse{
		ID:                    entry.ID,
		Date:                  entry.Date,
		SleepHours:            entry.SleepHours,
		SleepQuality:          entry.SleepQuality,
		Energy:                entry.Energy,
		DeepWorkBlocks:        entry.DeepWorkBlocks,
		Transcript:            s.cipher.SafeDecrypt(entry.Transcript),
		ReflectionSummary:     s.cipher.SafeDecrypt(entry.ReflectionSummary),
		LikelyDrivers:         drivers,
		PredictedImpact:       s.cipher.SafeDecrypt(entry.PredictedImpact),
		ExperimentForTomorrow: s.cipher.SafeDecrypt(entry.ExperimentForTomorrow),
		EntryNumber:           entry.EntryNumber,
		IsFollowUp:            entry.IsFollowUp,
		IsFinalForDay:         isFinal,
		CreatedAt:             entry.CreatedAt,
	}, nil
}

// completer returns a fresh model client for single-shot helpers, or nil
// when no provider is configured.
func (s *entryService) completer() analysis.Completer {
	if s.factory == nil {
		return nil
	}
	return s.factory()
}
