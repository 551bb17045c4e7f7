package handler

import (
	"encoding/json"
	"net/http"

	"github.com/signal-au/signal-api/internal/api/validation"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/llm"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type AssistHandler struct {
	service service.AssistService
}

func NewAssistHandler(service service.AssistService) *AssistHandler {
	return &AssistHandler{service: service}
}

// Clarify handles POST /v1/clarify
// @Summary Suggest follow-up questions
// @Description Generate up to two follow-up questions for a partial reflection. Falls back to keyword heuristics when the model is unavailable.
// @Tags assist
// @Accept json
// @Produce json
// @Param request body domain.ClarifyRequest true "Partial reflection text"
// @Success 200 {object} domain.ClarifyResponse "Follow-up questions"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Router /clarify [post]
func (h *AssistHandler) Clarify(w http.ResponseWriter, r *http.Request) {
	var req domain.ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp := h.service.Clarify(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// CheckTopics handles POST /v1/check-topics
// @Summary Check reflection coverage
// @Description Report which required reflection topics (sleep, feeling, attempt) the text has not meaningfully covered.
// @Tags assist
// @Accept json
// @Produce json
// @Param request body domain.CheckTopicsRequest true "Reflection text"
// @Success 200 {object} domain.CheckTopicsResponse "Missing topics"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Router /check-topics [post]
func (h *AssistHandler) CheckTopics(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckTopicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp := h.service.CheckTopics(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Transcribe handles POST /v1/transcribe
// @Summary Transcribe a voice reflection
// @Description Convert an uploaded audio recording (multipart field "audio", max 25MB) to text.
// @Tags assist
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "Audio recording"
// @Success 200 {object} domain.TranscribeResponse "Recognized text"
// @Failure 400 {object} problem.Problem "Missing or oversized audio file"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 503 {object} problem.Problem "Speech-to-text not configured"
// @Router /transcribe [post]
func (h *AssistHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, llm.MaxAudioSize)

	if err := r.ParseMultipartForm(llm.MaxAudioSize); err != nil {
		problem.BadRequest("Expected multipart form with an audio file (max 25MB)").Write(w)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		problem.BadRequest("No audio file in request").Write(w)
		return
	}
	defer file.Close()

	transcript, err := h.service.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		if err == llm.ErrOpenAIUnavailable {
			problem.ServiceUnavailable("Speech-to-text is not configured").Write(w)
			return
		}
		problem.InternalError("Transcription failed").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.TranscribeResponse{Transcript: transcript})
}
