package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/domain"
)

func TestFeedbackService_Submit(t *testing.T) {
	repo := &MockFeedbackRepository{}
	svc := NewFeedbackService(repo, nil)
	userID := uuid.New()

	err := svc.Submit(context.Background(), userID, &domain.FeedbackRequest{
		Rating:     4,
		Comment:    "  Useful patterns this week  ",
		ReportType: "weekly",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d rows", len(repo.saved))
	}
	got := repo.saved[0]
	if got.UserID != userID || got.Rating != 4 {
		t.Errorf("saved = %+v", got)
	}
	if got.Comment != "Useful patterns this week" {
		t.Errorf("comment = %q, should be trimmed", got.Comment)
	}
}

func TestFeedbackService_Submit_RecordsLangfuseScore(t *testing.T) {
	repo := &MockFeedbackRepository{}
	lf := &MockLangfuseClient{enabled: true}
	svc := NewFeedbackService(repo, lf)

	err := svc.Submit(context.Background(), uuid.New(), &domain.FeedbackRequest{
		Rating:     3,
		Comment:    "Missed my late-night entries",
		ReportType: "weekly",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lf.traces) != 1 || lf.traces[0].Name != "user-feedback" {
		t.Fatalf("traces = %+v", lf.traces)
	}
	if len(lf.scores) != 1 {
		t.Fatalf("scores = %+v", lf.scores)
	}
	if lf.scores[0].Name != "user_rating" || lf.scores[0].Value != 3 {
		t.Errorf("score = %+v", lf.scores[0])
	}
}

func TestFeedbackService_Submit_RatingBounds(t *testing.T) {
	svc := NewFeedbackService(&MockFeedbackRepository{}, nil)

	for _, rating := range []int{0, -1, 6} {
		err := svc.Submit(context.Background(), uuid.New(), &domain.FeedbackRequest{Rating: rating})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("rating %d: got %v, want ErrInvalidInput", rating, err)
		}
	}
}

func TestFeedbackService_Submit_TruncatesComment(t *testing.T) {
	repo := &MockFeedbackRepository{}
	svc := NewFeedbackService(repo, nil)

	err := svc.Submit(context.Background(), uuid.New(), &domain.FeedbackRequest{
		Rating:  5,
		Comment: strings.Repeat("x", 2000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved[0].Comment) != 1000 {
		t.Errorf("comment length = %d, want 1000", len(repo.saved[0].Comment))
	}
}
