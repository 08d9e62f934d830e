package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/api/handler"
	customMiddleware "github.com/nyaya-ai/legal-voice-api/internal/api/middleware"
	"github.com/nyaya-ai/legal-voice-api/internal/catalog"
	"github.com/nyaya-ai/legal-voice-api/internal/config"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
	"github.com/nyaya-ai/legal-voice-api/internal/llm/anthropic"
	"github.com/nyaya-ai/legal-voice-api/internal/llm/deepseek"
	"github.com/nyaya-ai/legal-voice-api/internal/llm/gemini"
	"github.com/nyaya-ai/legal-voice-api/internal/llm/ollama"
	"github.com/nyaya-ai/legal-voice-api/internal/llm/openai"
	"github.com/nyaya-ai/legal-voice-api/internal/prompt"
	"github.com/nyaya-ai/legal-voice-api/internal/repository/postgres"
	"github.com/nyaya-ai/legal-voice-api/internal/repository/redis"
	"github.com/nyaya-ai/legal-voice-api/internal/security"
	"github.com/nyaya-ai/legal-voice-api/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Catalog and prompt resolver
	lawyerCatalog := catalog.New(catalog.Personas())
	resolver := prompt.NewResolver(lawyerCatalog)

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	// Rate limiter and report cache
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)
	reportCache := redis.NewReportCache(redisClient, cfg.Report.CacheTTL)

	// LLM router with providers
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.LLM.DefaultProvider)

	if cfg.LLM.Ollama.Host != "" {
		log.Info().Str("host", cfg.LLM.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}
	if cfg.LLM.Anthropic.APIKey != "" {
		llmRouter.RegisterProvider(anthropic.NewProvider(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model))
	}
	if cfg.LLM.DeepSeek.APIKey != "" {
		llmRouter.RegisterProvider(deepseek.NewProvider(cfg.LLM.DeepSeek.APIKey, cfg.LLM.DeepSeek.Model))
	}
	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini))
	} else {
		log.Warn().Msg("Gemini API Key is empty, skipping registration")
	}

	// Services
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	reportService := service.NewReportService(
		sessionRepo,
		resolver,
		llmRouter,
		reportCache,
		cfg.Report.Temperature,
		cfg.Report.MaxTokens,
	)
	suggestService := service.NewSuggestService(lawyerCatalog, llmRouter)

	// Handlers
	sessionHandler := handler.NewSessionHandler(sessionService)
	reportHandler := handler.NewReportHandler(reportService)
	lawyerHandler := handler.NewLawyerHandler(lawyerCatalog, suggestService, resolver)
	exportHandler := handler.NewExportHandler(reportService)

	// Auth middleware
	verifier := security.NewTokenVerifier(cfg.Auth.JWTSecret)
	authMiddleware := customMiddleware.NewAuthMiddleware(verifier)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.Save)
				r.Get("/", sessionHandler.Get)
				r.Get("/{sessionID}/report/export", exportHandler.Export)
			})

			r.Post("/legal-report", reportHandler.Generate)

			r.Get("/llm-providers", handler.ListLLMProviders(llmRouter))

			r.Get("/lawyers", lawyerHandler.List)
			r.Post("/suggest-lawyers", lawyerHandler.Suggest)
			r.Get("/prompts", lawyerHandler.Prompts)
		})
	})

	return r
}
