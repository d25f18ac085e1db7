package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecodin/internal/ai"
	"ecodin/internal/config"
	"ecodin/internal/database"
	"ecodin/internal/handlers"
	"ecodin/internal/middleware"
	"ecodin/internal/repositories"
	"ecodin/internal/services"
	"ecodin/internal/stream"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		logger.Error("failed to access underlying database handle", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.IsDevelopment() {
		if err := db.AutoMigrate(); err != nil {
			logger.Error("failed to auto-migrate schema", "error", err)
			os.Exit(1)
		}
		if err := db.CreateIndexes(); err != nil {
			logger.Warn("failed to create indexes", "error", err)
		}
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	// Metrics and realtime stream
	metrics := services.NewPrometheusMetrics()
	hub := stream.NewHub(logger, metrics.SetStreamClients)

	// AI boundary
	breaker := ai.NewCircuitBreaker(ai.DefaultCircuitBreakerConfig())
	aiClient := ai.NewClient(cfg.AI, breaker, logger)

	// Services
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, logger)
	transactionService := services.NewTransactionService(transactionRepo, hub, metrics, logger)
	savingsGoalService := services.NewSavingsGoalService(userRepo, logger)
	quotaService := services.NewQuotaService(userRepo, cfg.Quota.MonthlySummaryLimit, logger)
	summaryService := services.NewSummaryService(userRepo, transactionRepo, quotaService, aiClient, metrics, logger)
	suggestionService := services.NewSuggestionService(aiClient, cfg.Quota.SuggestionDebounce, metrics, logger)

	if cfg.IsDevelopment() && os.Getenv("SEED_SAMPLE_DATA") == "true" {
		seeder := services.NewSampleDataService(userRepo, transactionRepo, passwordService, logger)
		if err := seeder.Seed(); err != nil {
			logger.Warn("failed to seed sample data", "error", err)
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(transactionService, authService)
	savingsGoalHandler := handlers.NewSavingsGoalHandler(savingsGoalService)
	aiHandler := handlers.NewAIHandler(summaryService, suggestionService, quotaService, authService)
	streamHandler := handlers.NewStreamHandler(transactionService, tokenService, hub, logger)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws/transactions", streamHandler.Stream)

	api := e.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(tokenService))
	protected.GET("/me", authHandler.Me)
	protected.PUT("/me/savings-goal", savingsGoalHandler.SetGoal)

	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions", transactionHandler.List)
	protected.PUT("/transactions/:id", transactionHandler.Update)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	protected.GET("/reports/summary", reportHandler.Summary)
	protected.GET("/reports/trends", reportHandler.Trends)

	protected.POST("/ai/summary", aiHandler.GenerateSummary)
	protected.GET("/ai/usage", aiHandler.Usage)
	protected.POST("/ai/suggest-category", aiHandler.SuggestCategory)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("shutting down server")
		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
