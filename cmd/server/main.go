package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpAdapter "github.com/auric/goldvault/internal/adapter/http"
	"github.com/auric/goldvault/internal/adapter/http/handler"
	"github.com/auric/goldvault/internal/adapter/http/middleware"
	postgresRepo "github.com/auric/goldvault/internal/adapter/repository/postgres"
	redisRepo "github.com/auric/goldvault/internal/adapter/repository/redis"
	"github.com/auric/goldvault/internal/infrastructure/config"
	"github.com/auric/goldvault/internal/infrastructure/eventpublisher"
	"github.com/auric/goldvault/internal/infrastructure/logger"
	"github.com/auric/goldvault/internal/infrastructure/metrics"
	"github.com/auric/goldvault/internal/infrastructure/postgres"
	"github.com/auric/goldvault/internal/infrastructure/redis"
	"github.com/auric/goldvault/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	branchRepo := postgresRepo.NewBranchRepository(pool)
	holdingRepo := postgresRepo.NewHoldingRepository(pool)
	physicalRepo := postgresRepo.NewPhysicalGoldRepository(pool)
	historyRepo := postgresRepo.NewHistoryRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	vendorRepo := postgresRepo.NewVendorRepository(pool)
	addressRepo := postgresRepo.NewAddressRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	priceCache := redisRepo.NewPriceCache(vendorRepo, cache, cfg.PriceCacheTTL, m)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	// Initialize use cases
	branchUC := usecase.NewBranchUseCase(txManager, branchRepo, historyRepo, outboxRepo, vendorRepo, addressRepo, retrier, m)
	holdingUC := usecase.NewHoldingUseCase(txManager, holdingRepo, branchRepo, physicalRepo, historyRepo, outboxRepo, userRepo, vendorRepo, priceCache, idGen, retrier, m)
	physicalUC := usecase.NewPhysicalGoldUseCase(physicalRepo, branchRepo, userRepo)
	historyUC := usecase.NewHistoryUseCase(historyRepo, branchRepo, userRepo)
	paymentUC := usecase.NewPaymentUseCase(txManager, paymentRepo, outboxRepo, userRepo, m)

	// Initialize handlers
	branchHandler := handler.NewBranchHandler(branchUC)
	holdingHandler := handler.NewHoldingHandler(holdingUC)
	physicalHandler := handler.NewPhysicalHandler(physicalUC)
	historyHandler := handler.NewHistoryHandler(historyUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).WithMetrics(m)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BranchHandler:    branchHandler,
		HoldingHandler:   holdingHandler,
		HistoryHandler:   historyHandler,
		PhysicalHandler:  physicalHandler,
		PaymentHandler:   paymentHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           log,
	})

	// Start outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(log),
		Logger:     log,
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Metrics endpoint on its own port
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.MetricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		log.Info().Str("port", cfg.MetricsPort).Msg("starting metrics server")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("metrics server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
