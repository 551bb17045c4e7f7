package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/signal-au/signal-api/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}
