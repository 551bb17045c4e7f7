package service

import (
	"context"
	"strings"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/repository"
)

// WaitlistService stores beta signups.
type WaitlistService interface {
	// Join records an email on the waitlist. Re-joining is not an error;
	// the returned message distinguishes the two cases.
	Join(ctx context.Context, email string) (*domain.JoinResponse, error)
}

type waitlistService struct {
	repo repository.SignupRepository
}

func NewWaitlistService(repo repository.SignupRepository) WaitlistService {
	return &waitlistService{repo: repo}
}

func (s *waitlistService) Join(ctx context.Context, email string) (*domain.JoinResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}

	err := s.repo.Create(ctx, &domain.Signup{Email: email})
	if err != nil {
		if err == domain.ErrConflict {
			return &domain.JoinResponse{OK: true, Message: "You're already on the list."}, nil
		}
		return nil, err
	}

	return &domain.JoinResponse{OK: true, Message: "You're on the list. We'll be in touch."}, nil
}
