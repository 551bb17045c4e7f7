package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/domain"
)

func TestReminderService_NotConfigured(t *testing.T) {
	svc := NewReminderService(NewMockUserRepository(), NewMockEntryRepository(), &MockMailer{enabled: false}, "")

	_, err := svc.SendDailyReminders(context.Background())
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestReminderService_SendDailyReminders(t *testing.T) {
	userRepo := NewMockUserRepository()
	entryRepo := NewMockEntryRepository()
	mailer := &MockMailer{enabled: true}
	svc := NewReminderService(userRepo, entryRepo, mailer, "https://signal-au.com")

	today := time.Now().UTC().Format("2006-01-02")

	// Checked in today: skipped
	doneToday := &domain.User{ID: uuid.New(), Email: "done@example.com", Name: "Dana Done"}
	userRepo.users[doneToday.ID] = doneToday
	entryRepo.entries[uuid.New()] = &domain.Entry{ID: uuid.New(), UserID: doneToday.ID, Date: today}

	// Three prior days, nothing today: gets a day-4 reminder
	midTrial := &domain.User{ID: uuid.New(), Email: "mid@example.com", Name: "Max Mid"}
	userRepo.users[midTrial.ID] = midTrial
	for i := 1; i <= 3; i++ {
		entryRepo.entries[uuid.New()] = &domain.Entry{
			ID: uuid.New(), UserID: midTrial.ID, Date: fmt.Sprintf("2026-01-%02d", i),
		}
	}

	// Trial finished: skipped
	finished := &domain.User{ID: uuid.New(), Email: "ended@example.com"}
	userRepo.users[finished.ID] = finished
	for i := 1; i <= 7; i++ {
		entryRepo.entries[uuid.New()] = &domain.Entry{
			ID: uuid.New(), UserID: finished.ID, Date: fmt.Sprintf("2026-01-%02d", i),
		}
	}

	result, err := svc.SendDailyReminders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 1 {
		t.Errorf("sent = %d, want 1", result.Sent)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v", result.Errors)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("mailer sent %d messages", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.To != "mid@example.com" {
		t.Errorf("to = %s", msg.To)
	}
	if msg.Subject != "Day 4/7 — Time for your check-in" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Hey Max,") {
		t.Error("reminder should greet by first name")
	}
}

func TestReminderService_BrandNewUser(t *testing.T) {
	userRepo := NewMockUserRepository()
	entryRepo := NewMockEntryRepository()
	mailer := &MockMailer{enabled: true}
	svc := NewReminderService(userRepo, entryRepo, mailer, "")

	fresh := &domain.User{ID: uuid.New(), Email: "new@example.com"}
	userRepo.users[fresh.ID] = fresh

	result, err := svc.SendDailyReminders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 1 {
		t.Fatalf("sent = %d, want 1", result.Sent)
	}
	if mailer.sent[0].Subject != "Welcome to Signal — start your first check-in" {
		t.Errorf("subject = %q", mailer.sent[0].Subject)
	}
}

func TestReminderService_CollectsSendErrors(t *testing.T) {
	userRepo := NewMockUserRepository()
	entryRepo := NewMockEntryRepository()
	mailer := &MockMailer{enabled: true, err: errors.New("resend returned status 422")}
	svc := NewReminderService(userRepo, entryRepo, mailer, "")

	userRepo.users[uuid.New()] = &domain.User{ID: uuid.New(), Email: "bounce@example.com"}

	result, err := svc.SendDailyReminders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 0 {
		t.Errorf("sent = %d, want 0", result.Sent)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "bounce@example.com") {
		t.Errorf("errors = %v", result.Errors)
	}
}
