package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/llm"
)

func TestAssistHandler_Clarify(t *testing.T) {
	svc := &MockAssistService{
		clarifyResp: &domain.ClarifyResponse{
			Questions: []string{"What got in the way of your best work today?"},
			Source:    "fallback",
		},
	}
	h := NewAssistHandler(svc)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/clarify",
		bytes.NewReader([]byte(`{"text": "Slept badly and the morning dragged"}`)))
	h.Clarify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}
	if svc.lastText != "Slept badly and the morning dragged" {
		t.Errorf("text = %q", svc.lastText)
	}
	var resp domain.ClarifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Source != "fallback" || len(resp.Questions) != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestAssistHandler_Clarify_BadBody(t *testing.T) {
	h := NewAssistHandler(&MockAssistService{})
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/clarify", bytes.NewReader([]byte("nope")))
	h.Clarify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAssistHandler_CheckTopics(t *testing.T) {
	svc := &MockAssistService{
		topicsResp: &domain.CheckTopicsResponse{Missing: []string{"How did you sleep?"}},
	}
	h := NewAssistHandler(svc)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/v1/check-topics",
		bytes.NewReader([]byte(`{"text": "worked on the report, feeling sharp"}`)))
	h.CheckTopics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp domain.CheckTopicsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "How did you sleep?" {
		t.Errorf("response = %+v", resp)
	}
}

func multipartAudio(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	fw.Write(data)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestAssistHandler_Transcribe(t *testing.T) {
	svc := &MockAssistService{transcript: "slept six hours, felt fine"}
	h := NewAssistHandler(svc)
	rec := httptest.NewRecorder()

	body, contentType := multipartAudio(t, "audio", "reflection.webm", []byte("fake-audio"))
	req := httptest.NewRequest(http.MethodPost, "/v1/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	h.Transcribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}
	if svc.transcribeName != "reflection.webm" {
		t.Errorf("filename = %q", svc.transcribeName)
	}
	var resp domain.TranscribeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Transcript != "slept six hours, felt fine" {
		t.Errorf("transcript = %q", resp.Transcript)
	}
}

func TestAssistHandler_Transcribe_NoFile(t *testing.T) {
	h := NewAssistHandler(&MockAssistService{})
	rec := httptest.NewRecorder()

	body, contentType := multipartAudio(t, "video", "clip.mp4", []byte("fake"))
	req := httptest.NewRequest(http.MethodPost, "/v1/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	h.Transcribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAssistHandler_Transcribe_NotConfigured(t *testing.T) {
	h := NewAssistHandler(&MockAssistService{transcribeErr: llm.ErrOpenAIUnavailable})
	rec := httptest.NewRecorder()

	body, contentType := multipartAudio(t, "audio", "a.webm", []byte("fake"))
	req := httptest.NewRequest(http.MethodPost, "/v1/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	h.Transcribe(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
