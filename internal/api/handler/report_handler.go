package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Weekly handles GET /v1/reports/weekly
// @Summary Weekly performance report
// @Description Synthesize the last week of entries into a report. Locked until the user has entries on 7 distinct days.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.WeeklyReportResponse "Report, or lock status with progress"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 503 {object} domain.WeeklyReportResponse "Generation failed; metrics still populated"
// @Router /reports/weekly [get]
func (h *ReportHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	resp, err := h.service.Weekly(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrReportUnavailable) {
			// Narrative generation failed but the deterministic metrics are
			// still in the response; send them with the 503.
			if resp != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(resp)
				return
			}
			problem.ServiceUnavailable("Report generation failed, try again shortly").Write(w)
			return
		}
		problem.InternalError("Failed to build weekly report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
