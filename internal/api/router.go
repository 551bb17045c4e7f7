package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/signal-au/signal-api/docs"
	"github.com/signal-au/signal-api/internal/api/handler"
	"github.com/signal-au/signal-api/internal/api/middleware"
	"github.com/signal-au/signal-api/internal/auth"
)

// Rate limits for the expensive model-backed endpoints.
const (
	analysisRateLimit  = 30
	analysisRateWindow = time.Minute
)

type Router struct {
	entryHandler    *handler.EntryHandler
	reportHandler   *handler.ReportHandler
	assistHandler   *handler.AssistHandler
	waitlistHandler *handler.WaitlistHandler
	feedbackHandler *handler.FeedbackHandler
	reminderHandler *handler.ReminderHandler
	verifier        *auth.Verifier
	redisClient     *redis.Client
	cronSecret      string
}

func NewRouter(
	entryHandler *handler.EntryHandler,
	reportHandler *handler.ReportHandler,
	assistHandler *handler.AssistHandler,
	waitlistHandler *handler.WaitlistHandler,
	feedbackHandler *handler.FeedbackHandler,
	reminderHandler *handler.ReminderHandler,
	verifier *auth.Verifier,
	redisClient *redis.Client,
	cronSecret string,
) *Router {
	return &Router{
		entryHandler:    entryHandler,
		reportHandler:   reportHandler,
		assistHandler:   assistHandler,
		waitlistHandler: waitlistHandler,
		feedbackHandler: feedbackHandler,
		reminderHandler: reminderHandler,
		verifier:        verifier,
		redisClient:     redisClient,
		cronSecret:      cronSecret,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	rateLimit := middleware.RateLimit(rt.redisClient, analysisRateLimit, analysisRateWindow)

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/join", rt.waitlistHandler.Join)
		r.With(rateLimit).Post("/clarify", rt.assistHandler.Clarify)
		r.With(rateLimit).Post("/check-topics", rt.assistHandler.CheckTopics)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(rt.verifier))

			r.With(rateLimit).Post("/analyze", rt.entryHandler.Analyze)
			r.Get("/entries", rt.entryHandler.List)
			r.Get("/entries/{entryId}", rt.entryHandler.GetByID)
			r.With(rateLimit).Get("/reports/weekly", rt.reportHandler.Weekly)
			r.With(rateLimit).Post("/transcribe", rt.assistHandler.Transcribe)
			r.Post("/feedback", rt.feedbackHandler.Submit)
		})

		// Cron endpoints
		r.With(middleware.CronAuth(rt.cronSecret)).Post("/reminders/send", rt.reminderHandler.Send)
	})

	return r
}
