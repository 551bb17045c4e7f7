package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signal-au/signal-api/internal/api/validation"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type WaitlistHandler struct {
	service service.WaitlistService
}

func NewWaitlistHandler(service service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

// Join handles POST /v1/join
// @Summary Join the waitlist
// @Description Store a beta signup email. Joining twice is not an error.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body domain.JoinRequest true "Signup email"
// @Success 200 {object} domain.JoinResponse "Signup confirmation"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Invalid email"
// @Router /join [post]
func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req domain.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Join(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Valid email required").Write(w)
			return
		}
		problem.InternalError("Something went wrong").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
