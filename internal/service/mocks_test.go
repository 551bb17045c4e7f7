package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/analysis"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/langfuse"
	"github.com/signal-au/signal-api/internal/mail"
)

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	entries map[uuid.UUID]*domain.Entry
	err     error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{entries: make(map[uuid.UUID]*domain.Entry)}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockEntryRepository) sorted(userID uuid.UUID) []domain.Entry {
	var result []domain.Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (m *MockEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(userID), nil
}

func (m *MockEntryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.sorted(userID)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockEntryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.Entry
	for _, e := range m.entries {
		if e.UserID == userID && e.Date == date {
			if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
				latest = e
			}
		}
	}
	return latest, nil
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) CountForDate(ctx context.Context, userID uuid.UUID, date string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, e := range m.entries {
		if e.UserID == userID && e.Date == date {
			count++
		}
	}
	return count, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// MockSignupRepository is a mock implementation of SignupRepository
type MockSignupRepository struct {
	emails map[string]bool
	err    error
}

func NewMockSignupRepository() *MockSignupRepository {
	return &MockSignupRepository{emails: make(map[string]bool)}
}

func (m *MockSignupRepository) Create(ctx context.Context, signup *domain.Signup) error {
	if m.err != nil {
		return m.err
	}
	if m.emails[signup.Email] {
		return domain.ErrConflict
	}
	m.emails[signup.Email] = true
	return nil
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	saved []*domain.Feedback
	err   error
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, feedback)
	return nil
}

// MockMailer records sent messages instead of calling Resend.
type MockMailer struct {
	enabled bool
	sent    []mail.Message
	err     error
}

func (m *MockMailer) IsEnabled() bool { return m.enabled }

func (m *MockMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// stubCompleter returns a canned model response and records prompts.
type stubCompleter struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (c *stubCompleter) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func stubFactory(c *stubCompleter) analysis.Factory {
	return func() analysis.Completer { return c }
}

func offlineFactory() analysis.Factory {
	return func() analysis.Completer { return nil }
}

// MockLangfuseClient records traces and scores.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
