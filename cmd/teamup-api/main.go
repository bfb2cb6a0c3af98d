package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"campus-teamup/internal/api"
	"campus-teamup/internal/api/handlers"
	"campus-teamup/internal/auth"
	"campus-teamup/internal/cache"
	"campus-teamup/internal/config"
	"campus-teamup/internal/db"
	"campus-teamup/internal/health"
	"campus-teamup/internal/logger"
	"campus-teamup/internal/repository"
	"campus-teamup/internal/scheduler"
	"campus-teamup/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration first (before logger)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logger)

	logger.Info().
		Str("environment", cfg.Logger.Environment).
		Str("log_level", cfg.Logger.Level).
		Float64("min_overlap_hours", cfg.Match.MinOverlapHours).
		Msg("configuration loaded successfully")

	// Run migrations before connecting to database
	logger.Info().Msg("running database migrations")
	if err := db.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	database, err := db.NewDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	logger.Info().Msg("database connected successfully")

	// Optional candidate-pool cache
	var cardCache *cache.PublicCardCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		cardCache = cache.NewPublicCardCache(redisClient, cfg.Redis.CacheTTL)
		logger.Info().Dur("ttl", cfg.Redis.CacheTTL).Msg("match cache enabled")
	}

	// Repositories
	cardRepo := repository.NewCardRepository(database.Pool)
	requestRepo := repository.NewRequestRepository(database.Pool)

	// Services
	cardService := newCardService(cardRepo, cardCache)
	matchService := newMatchService(cardRepo, cardCache, cfg)
	requestService := service.NewRequestService(requestRepo, cardRepo)

	// Handlers
	cardHandler := handlers.NewCardHandler(cardService)
	matchHandler := handlers.NewMatchHandler(matchService)
	requestHandler := handlers.NewRequestHandler(requestService)

	// Scheduler keeps the pool cache warm; pointless without a cache.
	if cardCache != nil {
		cronScheduler := scheduler.NewScheduler(matchService)
		if err := cronScheduler.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to start scheduler")
		}
		defer cronScheduler.Stop()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(api.RequestIDMiddleware())
	router.Use(api.LoggingMiddleware())
	router.Use(api.CORSMiddleware(cfg.CORS))
	router.Use(api.ErrorHandlerMiddleware())

	healthChecker := health.NewChecker(database, cfg.Database.HealthTimeout)
	router.GET("/health", healthChecker.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(auth.APIKeyMiddleware(cfg.Auth))
	v1.Use(auth.IdentityMiddleware())
	{
		cards := v1.Group("/cards")
		{
			cards.POST("", cardHandler.CreateCard)
			cards.GET("", cardHandler.ListCards)
			cards.GET("/:id", cardHandler.GetCard)
			cards.PUT("/:id", cardHandler.UpdateCard)
			cards.DELETE("/:id", cardHandler.DeleteCard)
			cards.GET("/:id/matches", matchHandler.ListMatches)
		}

		requests := v1.Group("/requests")
		{
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("", requestHandler.ListRequests)
			requests.PATCH("/:id/status", requestHandler.UpdateRequestStatus)
		}
	}

	// Start server with configured bind address
	addr := cfg.GetBindAddress()
	// Use a listener so we can discover the selected port when PORT=0
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("failed to bind listener")
	}

	tcpAddr, ok := ln.Addr().(*net.TCPAddr)
	if !ok {
		_ = ln.Close()
		logger.Fatal().Msg("failed to determine TCP address")
	}
	selectedPort := tcpAddr.Port

	srv := &http.Server{
		Addr:    ln.Addr().String(),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		logger.Info().
			Int("port", selectedPort).
			Str("addr", cfg.Server.Host).
			Msg("starting server")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")

	fmt.Printf("PORT=%d\n", selectedPort)
}

// newCardService avoids handing a typed-nil cache pointer to the service's
// interface field.
func newCardService(cardRepo *repository.CardRepository, cardCache *cache.PublicCardCache) *service.CardService {
	if cardCache == nil {
		return service.NewCardService(cardRepo, nil)
	}
	return service.NewCardService(cardRepo, cardCache)
}

func newMatchService(cardRepo *repository.CardRepository, cardCache *cache.PublicCardCache, cfg *config.Config) *service.MatchService {
	if cardCache == nil {
		return service.NewMatchService(cardRepo, nil, cfg.MatchingConfig(), cfg.Match.MaxResults, cfg.Match.PoolSize)
	}
	return service.NewMatchService(cardRepo, cardCache, cfg.MatchingConfig(), cfg.Match.MaxResults, cfg.Match.PoolSize)
}
