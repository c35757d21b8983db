package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalassist/config"
	"legalassist/database"
	"legalassist/database/repository"
	"legalassist/handlers"
	"legalassist/middleware"
	"legalassist/monitoring"
	"legalassist/routes"
	"legalassist/services/consultation"
	"legalassist/services/content"
	"legalassist/services/document"
	"legalassist/services/intelligence"
	"legalassist/services/lawyer"
	"legalassist/services/message"
	"legalassist/services/payment"
	"legalassist/services/policy"
	"legalassist/services/storage"
	"legalassist/services/user"
	"legalassist/utils"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newGenerator(ctx context.Context, logger *zap.Logger) (intelligence.Generator, func()) {
	cfg := config.AppConfig
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; the assistant will answer with fallback replies")
		return intelligence.UnavailableGenerator{}, func() {}
	}
	gen, err := intelligence.NewGeminiGenerator(ctx, intelligence.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.AITemperature,
		MaxTokens:   cfg.AIMaxTokens,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize text generation: %v", err)
	}
	return gen, func() { _ = gen.Close() }
}

func newStorage(logger *zap.Logger) storage.StorageService {
	if config.AppConfig.CloudinaryURL == "" {
		logger.Warn("CLOUDINARY_URL not set; document uploads are disabled")
		return storage.UnconfiguredStorage{}
	}
	cld, err := storage.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}
	return cld
}

func newPaymentGateway(logger *zap.Logger) payment.PaymentGateway {
	if config.AppConfig.StripeKey == "" {
		logger.Warn("STRIPE_KEY not set; consultation payments are disabled")
		return payment.UnconfiguredGateway{}
	}
	return payment.NewStripeGateway(config.AppConfig.StripeKey)
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := utils.InitSentry(dsn); err != nil {
			logger.Error("main: sentry disabled", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}
	monitoring.Init()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	repos := repository.FromConfig()
	if repos.Mongo != nil {
		utils.StartHealthMonitor(rootCtx, repos.RedisClients, repos.Mongo)
	}

	generator, closeGenerator := newGenerator(rootCtx, logger)
	defer closeGenerator()

	// services.
	userService := &user.DefaultUserService{
		Repo:     repos.Users,
		Tokens:   repos.Tokens,
		TokenTTL: config.AppConfig.TokenTTL,
	}
	lawyerService := &lawyer.DefaultLawyerService{Repo: repos.Users}
	consultationService := &consultation.DefaultConsultationService{
		Turns:        repos.Turns,
		ScratchTurns: repos.ScratchTurns,
		Generator:    generator,
		Timeout:      config.AppConfig.AITimeout,
	}
	documentService := &document.DefaultDocumentService{
		Repo:    repos.Documents,
		Users:   repos.Users,
		Storage: newStorage(logger),
	}
	messageService := &message.DefaultMessageService{Repo: repos.Messages, Users: repos.Users}
	contentService := &content.DefaultContentService{Repo: repos.Content}
	paymentService := &payment.DefaultPaymentService{
		Repo:    repos.Transactions,
		Users:   repos.Users,
		Gateway: newPaymentGateway(logger),
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		UserRepo:  repos.Users,
		Tokens:    repos.Tokens,
		Users:     handlers.NewUserHandler(userService),
		Lawyers:   handlers.NewLawyerHandler(lawyerService),
		AI:        handlers.NewAIHandler(consultationService),
		Documents: handlers.NewDocumentHandler(documentService),
		Messages:  handlers.NewMessageHandler(messageService),
		Content:   handlers.NewContentHandler(contentService, &policy.DefaultPolicyService{}),
		Payments:  handlers.NewPaymentHandler(paymentService),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.PrometheusMetrics())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
