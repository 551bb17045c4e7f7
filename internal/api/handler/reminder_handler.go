package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type ReminderHandler struct {
	service service.ReminderService
}

func NewReminderHandler(service service.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// Send handles POST /v1/reminders/send
// @Summary Send daily check-in reminders
// @Description Email every user who has not checked in today and is still inside the 7-day trial. Called by the daily cron.
// @Tags reminders
// @Produce json
// @Param Authorization header string false "Bearer CRON_SECRET"
// @Success 200 {object} service.ReminderResult "Send summary"
// @Failure 401 {object} problem.Problem "Invalid cron secret"
// @Failure 503 {object} problem.Problem "Mail provider not configured"
// @Router /reminders/send [post]
func (h *ReminderHandler) Send(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SendDailyReminders(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			problem.ServiceUnavailable("RESEND_API_KEY not set").Write(w)
			return
		}
		problem.InternalError("Reminder run failed").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
