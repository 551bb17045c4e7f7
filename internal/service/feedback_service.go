package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/langfuse"
	"github.com/signal-au/signal-api/internal/repository"
)

// FeedbackService stores user feedback left after viewing reports.
type FeedbackService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error
}

type feedbackService struct {
	repo     repository.FeedbackRepository
	langfuse langfuse.Client
}

func NewFeedbackService(repo repository.FeedbackRepository, lf langfuse.Client) FeedbackService {
	return &feedbackService{repo: repo, langfuse: lf}
}

func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidInput
	}

	feedback := &domain.Feedback{
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    domain.SanitizeText(req.Comment, 1000),
		ReportType: domain.SanitizeText(req.ReportType, 50),
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return err
	}

	s.recordScore(ctx, userID, feedback)
	return nil
}

// recordScore mirrors stored feedback into Langfuse as a user_rating score so
// prompt quality can be reviewed against real ratings.
func (s *feedbackService) recordScore(ctx context.Context, userID uuid.UUID, feedback *domain.Feedback) {
	if s.langfuse == nil || !s.langfuse.IsEnabled() {
		return
	}

	traceID, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   "user-feedback",
		Input: map[string]any{
			"report_type": feedback.ReportType,
		},
		Output: map[string]any{
			"rating": feedback.Rating,
		},
		Tags: []string{"feedback"},
	})
	if err != nil {
		log.Printf("[feedback] creating langfuse trace: %v", err)
		return
	}

	if err := s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   float64(feedback.Rating),
		Comment: feedback.Comment,
	}); err != nil {
		log.Printf("[feedback] creating langfuse score: %v", err)
	}
}
