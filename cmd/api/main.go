// @title SlideQuiz API
// @version 1.0
// @description Document-to-quiz backend: upload a PDF, PPTX or DOCX, extract its text and generate quiz questions through an external LLM.
// @host localhost:8080
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"slidequiz/internal/adapter"
	"slidequiz/internal/adapter/extractor"
	"slidequiz/internal/adapter/questiongen"
	"slidequiz/internal/cache"
	"slidequiz/internal/config"
	"slidequiz/internal/domain"
	"slidequiz/internal/handler"
	"slidequiz/internal/logger"
	"slidequiz/internal/middleware"
	"slidequiz/internal/service"
	"slidequiz/internal/validation"

	_ "slidequiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// A missing API credential is a startup-time fatal, not a per-request one.
	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// LLM client for question generation
	httpClient := &http.Client{Timeout: cfg.OpenAI.Timeout}
	llm, err := openai.New(
		openai.WithToken(cfg.OpenAI.APIKey),
		openai.WithModel(cfg.OpenAI.Model),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	generator, err := questiongen.NewOpenAIQuestionGenerator(llm, cfg.Generation, cfg.OpenAI.Timeout, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create question generator", zap.Error(err))
	}
	appLogger.Info("Question generator initialized", zap.String("model", cfg.OpenAI.Model))

	// Redis keeps generated question sets for the grading flow. The service
	// degrades gracefully without it: generation still works, grading is off.
	var cacheAdapter domain.Cache
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		appLogger.Warn("Redis unavailable; question sets will not be retained", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	// Initialize services
	extractionService := service.NewExtractionService(extractor.NewDocumentExtractor())
	questionService := service.NewQuestionService(generator, cacheAdapter, cfg)

	// Initialize handlers
	validator := validation.NewValidator(cfg.Generation.MaxQuestionCount)
	extractHandler := handler.NewExtractHandler(extractionService)
	questionHandler := handler.NewQuestionHandler(questionService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Upload.MaxFileSize,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to SlideQuiz. Upload a document to get started."})
	})

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/upload-slide/", extractHandler.UploadSlide)
	apiGroup.Post("/generate-questions/", questionHandler.GenerateQuestions)

	if cacheAdapter != nil {
		gradingService := service.NewGradingService(cacheAdapter, cfg.Generation.ResultTTL)
		gradingHandler := handler.NewGradingHandler(gradingService, validator)
		apiGroup.Post("/submit-answers/", gradingHandler.SubmitAnswers)
		apiGroup.Get("/results/:set_id", gradingHandler.GetResults)
	}

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
