package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/mail"
	"github.com/signal-au/signal-api/internal/repository"
)

// reminderLookback bounds how many recent entries are loaded per user when
// computing trial progress.
const reminderLookback = 30

// ReminderResult summarizes one reminder run.
// @Description Outcome of a daily reminder sweep.
type ReminderResult struct {
	OK      bool     `json:"ok"`
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ReminderService emails users who have not checked in today.
type ReminderService interface {
	SendDailyReminders(ctx context.Context) (*ReminderResult, error)
}

type reminderService struct {
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
	mailer    mail.Client
	appURL    string
}

func NewReminderService(userRepo repository.UserRepository, entryRepo repository.EntryRepository, mailer mail.Client, appURL string) ReminderService {
	return &reminderService{
		userRepo:  userRepo,
		entryRepo: entryRepo,
		mailer:    mailer,
		appURL:    appURL,
	}
}

func (s *reminderService) SendDailyReminders(ctx context.Context) (*ReminderResult, error) {
	if s.mailer == nil || !s.mailer.IsEnabled() {
		return nil, domain.ErrNotConfigured
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	result := &ReminderResult{OK: true, Errors: []string{}}

	for i := range users {
		user := &users[i]
		if user.Email == "" {
			continue
		}

		entries, err := s.entryRepo.ListRecent(ctx, user.ID, reminderLookback)
		if err != nil {
			log.Printf("[reminders] listing entries for %s: %v", user.ID, err)
			entries = nil
		}

		checkedInToday := false
		distinct := make(map[string]struct{}, len(entries))
		for j := range entries {
			if entries[j].Date == today {
				checkedInToday = true
			}
			if entries[j].Date != "" {
				distinct[entries[j].Date] = struct{}{}
			}
		}

		if checkedInToday {
			result.Skipped++
			continue
		}

		dayNumber := len(distinct) + 1
		if dayNumber > mail.TrialDays {
			result.Skipped++
			continue
		}

		msg := mail.Message{
			To:      user.Email,
			Subject: mail.ReminderSubject(dayNumber),
			HTML:    mail.BuildReminderHTML(dayNumber, user.FirstName(), s.appURL),
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			if len(result.Errors) < 10 {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", user.Email, err))
			}
			continue
		}
		result.Sent++
	}

	return result, nil
}
