package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/usecase/generation"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/usecase/maintenance"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/imagegen"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/payment"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		Development: cfg.Logger.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.FromAppConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Unit of work over the account and transaction tables
	uow := dbManager.CreateUnitOfWork()
	generationRepo := repository.NewGenerationRepository(dbManager.DB(), tp, appLogger)

	guard, closeGuard, err := newRequestGuard(ctx, cfg, dbManager, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize request guard", map[string]any{
			"backend": cfg.Guard.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer closeGuard()

	// External providers
	checkoutGateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, appLogger)
	eventSource := payment.NewStripeEventSource(cfg.Stripe.WebhookSecret, appLogger)
	verifier := auth.NewJWTVerifier(auth.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}, appLogger)
	imageGenerator := imagegen.NewReplicateClient(imagegen.Config{
		APIToken:       cfg.Generation.APIToken,
		BaseURL:        cfg.Generation.BaseURL,
		ModelVersion:   cfg.Generation.ModelVersion,
		InferenceSteps: cfg.Generation.InferenceSteps,
		RequestTimeout: cfg.Generation.RequestTimeout,
		PollInterval:   cfg.Generation.PollInterval,
	}, &http.Client{Timeout: 30 * time.Second}, tp, appLogger)

	// Initialize use cases
	ledgerService := ledger.NewLedgerService(uow, idgen.NewUUIDGenerator(), tp, appLogger, ledger.Config{
		InitialCredits:      cfg.Ledger.InitialCredits,
		DefaultHistoryLimit: cfg.Ledger.DefaultHistoryLimit,
		MaxHistoryLimit:     cfg.Ledger.MaxHistoryLimit,
	})
	// Reads and referenced credits are replayed on transient store errors
	retryingLedger := database.NewRetryingLedger(ledgerService, database.LedgerRetryConfig(), appLogger)

	generationService := generation.NewGenerationService(
		retryingLedger,
		generationRepo,
		guard,
		imageGenerator,
		idgen.NewUUIDGenerator(),
		tp,
		appLogger,
		generation.Config{
			MaxAttempts:  cfg.Generation.MaxAttempts,
			RetryBackoff: coreport.Duration(cfg.Generation.RetryBackoff),
			Concurrency:  cfg.Generation.Concurrency,
			ImageWidth:   cfg.Generation.ImageWidth,
			ImageHeight:  cfg.Generation.ImageHeight,
			GuardTTL:     cfg.Guard.TTL,
		},
	)

	purchaseService := purchase.NewPurchaseService(retryingLedger, checkoutGateway, generationRepo, appLogger, purchase.Config{
		AppURL: cfg.App.URL,
	})

	maintenanceService := maintenance.NewMaintenanceService(uow, guard, appLogger)

	// Periodic housekeeping
	var jobs *scheduler.Scheduler
	if cfg.Reconciliation.Enabled {
		jobs = scheduler.New(maintenanceService, scheduler.Config{
			ReconcileSchedule:  cfg.Reconciliation.Schedule,
			GuardPurgeSchedule: cfg.Reconciliation.GuardPurgeSchedule,
		}, appLogger)
		if err := jobs.Register(); err != nil {
			appLogger.Error("Failed to register maintenance jobs", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		jobs.Start()
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.App.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Credit:     handler.NewCreditHandler(retryingLedger, purchaseService, eventSource, appLogger),
		Generation: handler.NewGenerationHandler(generationService, appLogger),
		Payment:    handler.NewPaymentHandler(purchaseService, appLogger),
		Health:     handler.NewHealthHandler(dbManager, appLogger),
	}, verifier, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"guard_backend": cfg.Guard.Backend,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if jobs != nil {
		appLogger.Info("Stopping maintenance jobs...", nil)
		jobs.Stop(shutdownCtx)
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newRequestGuard builds the configured guard backend and returns a function releasing its resources
func newRequestGuard(
	ctx context.Context,
	cfg *config.Config,
	dbManager *database.Manager,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (persistence.RequestGuard, func(), error) {
	if cfg.Guard.Backend != "redis" {
		return repository.NewRequestGuardRepository(dbManager.DB(), tp, appLogger), func() {}, nil
	}

	client, err := cache.NewClient(ctx, cache.ClientConfig{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	}, appLogger)
	if err != nil {
		return nil, nil, err
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			appLogger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	return cache.NewRequestGuard(client, appLogger), closeClient, nil
}
