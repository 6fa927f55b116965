package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/gobroker/internal/adapter/http"
	"github.com/iho/gobroker/internal/adapter/http/handler"
	"github.com/iho/gobroker/internal/adapter/http/middleware"
	"github.com/iho/gobroker/internal/adapter/quote"
	postgresRepo "github.com/iho/gobroker/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gobroker/internal/adapter/repository/redis"
	"github.com/iho/gobroker/internal/infrastructure/config"
	"github.com/iho/gobroker/internal/infrastructure/logger"
	"github.com/iho/gobroker/internal/infrastructure/metrics"
	"github.com/iho/gobroker/internal/infrastructure/postgres"
	"github.com/iho/gobroker/internal/infrastructure/redis"
	"github.com/iho/gobroker/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	startingCash, err := decimal.NewFromString(cfg.StartingCash)
	if err != nil {
		log.Fatal().Err(err).Str("starting_cash", cfg.StartingCash).Msg("invalid starting cash")
	}

	ctx := context.Background()

	// Apply pending migrations when a path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
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
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	quoteCache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Quote gateway
	var quotes usecase.QuoteService
	switch cfg.QuoteProvider {
	case "static":
		quotes = quote.NewStaticService()
		log.Info().Msg("using static quote provider")
	default:
		quotes = quote.NewClient(cfg.QuoteBaseURL, cfg.QuoteTimeout, m)
		log.Info().Str("base_url", cfg.QuoteBaseURL).Msg("using http quote provider")
	}
	quotes = quote.NewCachedService(quotes, quoteCache, cfg.QuoteCacheTTL, appLogger, m)

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen, startingCash)
	tradeUC := usecase.NewTradeUseCase(txManager, accountRepo, entryRepo, quotes, idGen, m).
		WithRetrier(postgresRepo.NewRetrier())
	portfolioUC := usecase.NewPortfolioUseCase(accountRepo, entryRepo, quotes)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	tradeHandler := handler.NewTradeHandler(tradeUC)
	portfolioHandler := handler.NewPortfolioHandler(portfolioUC)
	quoteHandler := handler.NewQuoteHandler(quotes)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		TradeHandler:     tradeHandler,
		PortfolioHandler: portfolioHandler,
		QuoteHandler:     quoteHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:           appLogger,
	})

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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
