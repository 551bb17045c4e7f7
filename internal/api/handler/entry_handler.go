package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/signal-au/signal-api/internal/api/validation"
	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/pkg/problem"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Analyze handles POST /v1/analyze
// @Summary Submit a daily reflection
// @Description Analyze a daily reflection and store the entry. When a critical detail is missing, the response carries needs_answer instead of an entry; resubmit with the answer appended and skip_missing_check set.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.AnalyzeRequest true "Daily reflection with numeric anchors"
// @Success 200 {object} domain.AnalyzeResponse "Stored entry or a clarifying question"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 409 {object} problem.Problem "Entry for this date already exists"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 502 {object} problem.Problem "Analysis temporarily unavailable"
// @Router /analyze [post]
func (h *EntryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	var req domain.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Analyze(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrEntryExists) {
			problem.Conflict("Entry for this date already exists; set overwrite to replace it").Write(w)
			return
		}
		if errors.Is(err, domain.ErrAnalysisUnavailable) {
			problem.BadGateway("Analysis is temporarily unavailable, try again shortly").Write(w)
			return
		}
		problem.InternalError("Failed to analyze reflection").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/entries
// @Summary List entries
// @Description Fetch paginated check-in history, newest first. Summaries omit the transcript and full analysis.
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)" format(date) example(2026-02-01)
// @Param to query string false "End date (YYYY-MM-DD)" format(date) example(2026-02-28)
// @Param limit query integer false "Results per page (1-90)" default(20) minimum(1) maximum(90)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Entries with pagination"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Router /entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	filter, fieldErrors := parseEntryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		problem.InternalError("Failed to list entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetByID handles GET /v1/entries/{entryId}
// @Summary Fetch a single entry
// @Description Fetch one entry with its full transcript and analysis. Entries belonging to other users return 404.
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param entryId path string true "Entry UUID" format(uuid)
// @Success 200 {object} domain.EntryResponse "Full entry"
// @Failure 400 {object} problem.Problem "Invalid entry ID"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "Entry not found"
// @Router /entries/{entryId} [get]
func (h *EntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "entryId"))
	if err != nil {
		problem.BadRequest("Invalid entry ID format").Write(w)
		return
	}

	resp, err := h.service.GetByID(r.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Entry not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseEntryFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = fromStr
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = toStr
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
