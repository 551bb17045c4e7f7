package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signal-au/signal-api/internal/api/validation"
	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit handles POST /v1/feedback
// @Summary Submit feedback
// @Description Store a rating and optional comment left after viewing a report.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.FeedbackRequest true "Rating with optional comment"
// @Success 200 {object} map[string]any "Confirmation"
// @Failure 400 {object} problem.Problem "Invalid request body or rating"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Submit(r.Context(), userID, &req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Rating must be 1-5").Write(w)
			return
		}
		problem.InternalError("Failed to save feedback").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"ok": true, "message": "Thanks for your feedback!"})
}
