package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/domain"
)

const weeklyReportJSON = `{
	"week_narrative": "Sleep drove everything this week.",
	"metrics": {"avg_sleep": 99, "avg_sleep_quality": 99, "avg_energy": 99, "total_deep_work": 99, "entries_count": 99},
	"recurring_patterns": ["Late screens preceded poor sleep on 3 days"],
	"top_derailers": ["Meetings fragmented mornings"],
	"bright_spots": ["Two deep work blocks before noon on high-sleep days"],
	"weekly_experiment": {"focus": "Protect mornings", "protocol": "No meetings before 11", "mechanism": "Removes fragmentation", "success_metric": "8 deep work blocks"},
	"micro_shifts": ["Screens off by 22:30"]
}`

func seedWeek(repo *MockEntryRepository, userID uuid.UUID, days int) {
	for i := 1; i <= days; i++ {
		repo.entries[uuid.New()] = &domain.Entry{
			ID:                uuid.New(),
			UserID:            userID,
			Date:              fmt.Sprintf("2026-02-%02d", i),
			SleepHours:        7,
			SleepQuality:      3,
			Energy:            3,
			DeepWorkBlocks:    1,
			ReflectionSummary: "steady day",
		}
	}
}

func TestReportService_Weekly_Locked(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewReportService(repo, offlineFactory(), nil)
	userID := uuid.New()
	seedWeek(repo, userID, 4)

	resp, err := svc.Weekly(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Locked {
		t.Fatal("expected a locked response")
	}
	if resp.EntriesCount != 4 || resp.Needed != 7 {
		t.Errorf("lock status = %+v", resp)
	}
	if resp.Report != nil {
		t.Error("locked response should carry no report")
	}
}

func TestReportService_Weekly_DistinctDaysNotRows(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewReportService(repo, offlineFactory(), nil)
	userID := uuid.New()

	// Seven rows on the same date is still one day of data
	for i := 0; i < 7; i++ {
		repo.entries[uuid.New()] = &domain.Entry{
			ID: uuid.New(), UserID: userID, Date: "2026-02-01",
		}
	}

	resp, err := svc.Weekly(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Locked || resp.EntriesCount != 1 {
		t.Errorf("expected locked with 1 distinct day, got %+v", resp)
	}
}

func TestReportService_Weekly_Success(t *testing.T) {
	repo := NewMockEntryRepository()
	completer := &stubCompleter{response: weeklyReportJSON}
	svc := NewReportService(repo, stubFactory(completer), nil)
	userID := uuid.New()
	seedWeek(repo, userID, 7)

	resp, err := svc.Weekly(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Locked {
		t.Fatal("report should be unlocked at 7 distinct days")
	}
	report := resp.Report
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.WeekNarrative != "Sleep drove everything this week." {
		t.Errorf("narrative = %q", report.WeekNarrative)
	}

	// Metrics come from the entries, never from the model
	if report.Metrics.AvgSleep != 7 || report.Metrics.EntriesCount != 7 {
		t.Errorf("metrics = %+v", report.Metrics)
	}
	if report.Metrics.TotalDeepWork != 7 {
		t.Errorf("total deep work = %d", report.Metrics.TotalDeepWork)
	}

	if len(completer.prompts) != 1 || !strings.Contains(completer.prompts[0], "steady day") {
		t.Error("digest should carry the entry summaries")
	}
}

func TestReportService_Weekly_ModelFailure(t *testing.T) {
	repo := NewMockEntryRepository()
	svc := NewReportService(repo, offlineFactory(), nil)
	userID := uuid.New()
	seedWeek(repo, userID, 7)

	resp, err := svc.Weekly(context.Background(), userID)
	if !errors.Is(err, domain.ErrReportUnavailable) {
		t.Fatalf("expected ErrReportUnavailable, got %v", err)
	}

	// The failure response still carries the deterministic metrics so the
	// caller can show partial data.
	if resp == nil || resp.Report == nil {
		t.Fatal("failure response should carry the partial report")
	}
	if resp.Report.Err == "" {
		t.Error("partial report should carry the generation error")
	}
	if resp.Report.WeekNarrative != "" {
		t.Errorf("narrative = %q, want empty on failure", resp.Report.WeekNarrative)
	}
	metrics := resp.Report.Metrics
	if metrics.AvgSleep != 7 || metrics.EntriesCount != 7 || metrics.TotalDeepWork != 7 {
		t.Errorf("metrics = %+v, want aggregates from the seeded entries", metrics)
	}
}
