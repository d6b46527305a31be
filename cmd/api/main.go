package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/config"
	"github.com/mondalsurojit/swipe-assignment/internal/handlers"
	"github.com/mondalsurojit/swipe-assignment/internal/repositories"
	"github.com/mondalsurojit/swipe-assignment/internal/services"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	// Gemini is the question/evaluation/summary backend; every adapter has a
	// fallback path, so the service stays useful when calls fail.
	generator, err := services.NewGeminiGenerator(
		ctx,
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.Timeout,
	)
	if err != nil {
		log.Fatal("failed to initialize gemini client", zap.Error(err))
	}
	log.Info("gemini client initialized", zap.String("model", cfg.Gemini.Model))

	// Candidate records persist to Postgres when configured, otherwise they
	// live in process memory.
	candidateRepo := repositories.NewMemoryCandidateRepository()
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatal("failed to initialize database", zap.Error(err))
		}
		candidateRepo = repositories.NewGormCandidateRepository(db)
		log.Info("database connected", zap.String("db", cfg.Database.DBName))
	}
	sessionRepo := repositories.NewMemorySessionRepository()

	var indexer services.CandidateIndexer
	if cfg.Qdrant.URL != "" {
		indexer, err = services.NewQdrantIndexer(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			generator,
		)
		if err != nil {
			log.Fatal("failed to initialize qdrant", zap.Error(err))
		}
		if err := indexer.InitCollection(); err != nil {
			log.Fatal("failed to initialize qdrant collection", zap.Error(err))
		}
		log.Info("candidate semantic index enabled", zap.String("collection", cfg.Qdrant.Collection))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	questionGen := services.NewQuestionGenerator(generator, rng, log)
	answerEval := services.NewAnswerEvaluator(generator, rng, log)
	summaryGen := services.NewSummaryGenerator(generator, log)

	directory := services.NewCandidateDirectory(candidateRepo, indexer, log)
	engine := services.NewInterviewEngine(
		sessionRepo,
		directory,
		questionGen,
		answerEval,
		summaryGen,
		cfg.Interview.QuestionCount,
		log,
	)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal("failed to create upload directory", zap.Error(err))
	}
	resumeParser := services.NewResumeParser()

	verifier := services.NewJWTVerifier(cfg.Auth.JWTSecret)
	referrals := services.NewReferralValidator(cfg.Auth.ReferralCodes)

	authHandler := handlers.NewAuthHandler(verifier, referrals)
	resumeHandler := handlers.NewResumeHandler(storageService, resumeParser, cfg.Storage.MaxFileSize)
	interviewHandler := handlers.NewInterviewHandler(engine)
	candidateHandler := handlers.NewCandidateHandler(directory)

	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth / referral
	api.Post("/verify-token", authHandler.HandleVerifyToken)
	api.Post("/validate-referral", authHandler.HandleValidateReferral)

	// Resume intake
	api.Post("/upload-resume", resumeHandler.HandleUploadResume)

	// Interview flow
	api.Post("/start-interview", interviewHandler.HandleStartInterview)
	api.Post("/submit-answer", interviewHandler.HandleSubmitAnswer)
	api.Post("/terminate-interview", interviewHandler.HandleTerminateInterview)
	api.Post("/update-user-info", interviewHandler.HandleUpdateUserInfo)
	api.Get("/session/:sessionId", interviewHandler.HandleGetSession)

	// Recruiter read side
	api.Get("/candidates", candidateHandler.HandleListCandidates)
	api.Get("/candidates/semantic-search", candidateHandler.HandleSemanticSearch)
	api.Get("/candidate/:sessionId", candidateHandler.HandleGetCandidate)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload-resume",
				"POST /api/v1/start-interview",
				"POST /api/v1/submit-answer",
				"POST /api/v1/terminate-interview",
				"GET /api/v1/candidates",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
