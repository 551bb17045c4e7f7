// Signal API
//
// REST API for daily reflection analysis and weekly performance reports.
//
//	@title			Signal API
//	@version		1.0
//	@description	Analyze daily check-ins, browse entry history, and generate weekly performance reports.
//
//	@BasePath	/v1
//
//	@tag.name			entries
//	@tag.description	Daily check-in analysis and history
//
//	@tag.name			reports
//	@tag.description	Weekly report synthesis
//
//	@tag.name			assist
//	@tag.description	Reflection drafting helpers
//
//	@tag.name			waitlist
//	@tag.description	Public signup
//
//	@tag.name			feedback
//	@tag.description	Report feedback
//
//	@tag.name			reminders
//	@tag.description	Trial reminder emails
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Supabase JWT. Format: Bearer <token>
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-redis/redis/v8"

	"github.com/signal-au/signal-api/internal/analysis"
	"github.com/signal-au/signal-api/internal/api"
	"github.com/signal-au/signal-api/internal/api/handler"
	"github.com/signal-au/signal-api/internal/auth"
	"github.com/signal-au/signal-api/internal/config"
	"github.com/signal-au/signal-api/internal/crypto"
	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/internal/langfuse"
	"github.com/signal-au/signal-api/internal/llm"
	"github.com/signal-au/signal-api/internal/mail"
	"github.com/signal-au/signal-api/internal/repository"
	"github.com/signal-au/signal-api/internal/seed"
	"github.com/signal-au/signal-api/internal/service"
	"github.com/signal-au/signal-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "signal-api")
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				log.Printf("Failed to shut down tracer: %v", err)
			}
		}()
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Entry{}, &domain.Signup{}, &domain.Feedback{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Field encryption (disabled when ENCRYPTION_KEY is empty)
	cipher, err := crypto.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("Invalid ENCRYPTION_KEY: %v", err)
	}
	if cipher == nil {
		log.Println("Warning: ENCRYPTION_KEY not set, entry fields will be stored in plaintext")
	}

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, cipher); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAnalysisModel, cfg.OpenAITranscribeModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, analysis and transcription will be unavailable")
	}
	factory := analysis.Factory(func() analysis.Completer {
		if openaiClient == nil {
			return nil
		}
		return openaiClient
	})
	var transcriber service.Transcriber
	if openaiClient != nil {
		transcriber = openaiClient
	}

	// Langfuse client for feedback scores (no-op when not configured)
	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Reminder email client (no-op when RESEND_API_KEY is empty)
	mailer := mail.NewClient(mail.Config{
		APIKey: cfg.ResendAPIKey,
		From:   cfg.EmailFrom,
	})

	// Redis for rate limiting (disabled when REDIS_URL is empty)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("Warning: REDIS_URL not set, rate limiting disabled")
	}

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(db)
	userRepo := repository.NewUserRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Initialize services
	entryService := service.NewEntryService(entryRepo, factory, cipher)
	reportService := service.NewReportService(entryRepo, factory, cipher)
	assistService := service.NewAssistService(factory, transcriber)
	waitlistService := service.NewWaitlistService(signupRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, lfClient)
	reminderService := service.NewReminderService(userRepo, entryRepo, mailer, cfg.AppURL)

	// Initialize handlers
	entryHandler := handler.NewEntryHandler(entryService)
	reportHandler := handler.NewReportHandler(reportService)
	assistHandler := handler.NewAssistHandler(assistService)
	waitlistHandler := handler.NewWaitlistHandler(waitlistService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	reminderHandler := handler.NewReminderHandler(reminderService)

	// Setup router
	verifier := auth.NewVerifier(cfg.SupabaseJWTSecret)
	router := api.NewRouter(entryHandler, reportHandler, assistHandler,
		waitlistHandler, feedbackHandler, reminderHandler,
		verifier, redisClient, cfg.CronSecret)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
