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
)

const (
	// WeeklyEntriesNeeded is the number of distinct check-in days required
	// before the weekly report unlocks.
	WeeklyEntriesNeeded = 7

	// weeklyLookback is how many recent entries are considered for a report.
	weeklyLookback = 30
)

// ReportService produces the weekly synthesis report.
type ReportService interface {
	// Weekly returns the report, or a locked status while the user has
	// fewer than seven distinct days of entries.
	Weekly(ctx context.Context, userID uuid.UUID) (*domain.WeeklyReportResponse, error)
}

type reportService struct {
	repo        repository.EntryRepository
	synthesizer *analysis.Synthesizer
	cipher      *crypto.Cipher
}

// NewReportService creates a new ReportService.
func NewReportService(repo repository.EntryRepository, factory analysis.Factory, cipher *crypto.Cipher) ReportService {
	return &reportService{
		repo:        repo,
		synthesizer: analysis.NewSynthesizer(factory),
		cipher:      cipher,
	}
}

func (s *reportService) Weekly(ctx context.Context, userID uuid.UUID) (*domain.WeeklyReportResponse, error) {
	tracer := otel.Tracer("signal-api/analysis")
	ctx, span := tracer.Start(ctx, "ReportService.Weekly",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
		),
	)
	defer span.End()

	entries, err := s.repo.ListRecent(ctx, userID, weeklyLookback)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Transcript = s.cipher.SafeDecrypt(entries[i].Transcript)
		entries[i].ReflectionSummary = s.cipher.SafeDecrypt(entries[i].ReflectionSummary)
		entries[i].PredictedImpact = s.cipher.SafeDecrypt(entries[i].PredictedImpact)
		entries[i].ExperimentForTomorrow = s.cipher.SafeDecrypt(entries[i].ExperimentForTomorrow)
		for j, d := range entries[i].LikelyDrivers {
			entries[i].LikelyDrivers[j] = s.cipher.SafeDecrypt(d)
		}
	}

	distinct := make(map[string]struct{}, len(entries))
	for i := range entries {
		if entries[i].Date != "" {
			distinct[entries[i].Date] = struct{}{}
		}
	}

	span.SetAttributes(
		attribute.Int("entries.total", len(entries)),
		attribute.Int("entries.distinct_days", len(distinct)),
	)

	if len(distinct) < WeeklyEntriesNeeded {
		return &domain.WeeklyReportResponse{
			Locked:       true,
			EntriesCount: len(distinct),
			Needed:       WeeklyEntriesNeeded,
		}, nil
	}

	report := s.synthesizer.Synthesize(ctx, entries)
	if report.Err != "" && report.WeekNarrative == "" {
		span.SetAttributes(attribute.String("report.error", report.Err))
		// The synthesizer still computed the deterministic metrics, so the
		// failure response carries them for the caller to show partial data.
		return &domain.WeeklyReportResponse{Report: &report}, domain.ErrReportUnavailable
	}

	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &domain.WeeklyReportResponse{Report: &report}, nil
}
