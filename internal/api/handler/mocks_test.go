package handler

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
)

// MockEntryService is a mock implementation of service.EntryService
type MockEntryService struct {
	analyzeResp *domain.AnalyzeResponse
	analyzeErr  error
	listResp    *domain.EntryListResponse
	listErr     error
	getResp     *domain.EntryResponse
	getErr      error

	lastUserID  uuid.UUID
	lastRequest *domain.AnalyzeRequest
}

func (m *MockEntryService) Analyze(ctx context.Context, userID uuid.UUID, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	m.lastUserID = userID
	m.lastRequest = req
	return m.analyzeResp, m.analyzeErr
}

func (m *MockEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}

func (m *MockEntryService) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.EntryResponse, error) {
	m.lastUserID = userID
	return m.getResp, m.getErr
}

// MockReportService is a mock implementation of service.ReportService
type MockReportService struct {
	resp *domain.WeeklyReportResponse
	err  error
}

func (m *MockReportService) Weekly(ctx context.Context, userID uuid.UUID) (*domain.WeeklyReportResponse, error) {
	return m.resp, m.err
}

// MockAssistService is a mock implementation of service.AssistService
type MockAssistService struct {
	clarifyResp    *domain.ClarifyResponse
	topicsResp     *domain.CheckTopicsResponse
	transcript     string
	transcribeErr  error
	lastText       string
	transcribeName string
}

func (m *MockAssistService) Clarify(ctx context.Context, text string) *domain.ClarifyResponse {
	m.lastText = text
	return m.clarifyResp
}

func (m *MockAssistService) CheckTopics(ctx context.Context, text string) *domain.CheckTopicsResponse {
	m.lastText = text
	return m.topicsResp
}

func (m *MockAssistService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	m.transcribeName = filename
	return m.transcript, m.transcribeErr
}

// MockWaitlistService is a mock implementation of service.WaitlistService
type MockWaitlistService struct {
	resp      *domain.JoinResponse
	err       error
	lastEmail string
}

func (m *MockWaitlistService) Join(ctx context.Context, email string) (*domain.JoinResponse, error) {
	m.lastEmail = email
	return m.resp, m.err
}

// MockFeedbackService is a mock implementation of service.FeedbackService
type MockFeedbackService struct {
	err  error
	last *domain.FeedbackRequest
}

func (m *MockFeedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) error {
	m.last = req
	return m.err
}

// MockReminderService is a mock implementation of service.ReminderService
type MockReminderService struct {
	result *service.ReminderResult
	err    error
}

func (m *MockReminderService) SendDailyReminders(ctx context.Context) (*service.ReminderResult, error) {
	return m.result, m.err
}
