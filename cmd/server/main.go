package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alltopia/internal/ai"
	"alltopia/internal/config"
	"alltopia/internal/handler"
	"alltopia/internal/logger"
	"alltopia/internal/middleware"
	"alltopia/internal/prompt"
	"alltopia/internal/service"
	"alltopia/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger, err := logger.New(logger.FromConfig(cfg, "alltopia-api"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	zap.L().Info("Starting Alltopia server...")
	cfg.LogSummary(appLogger)

	defaultLocale, err := prompt.ParseLocale(cfg.DefaultLocale)
	if err != nil {
		zap.L().Fatal("Invalid DEFAULT_LOCALE", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Session storage ---
	var (
		sessions    session.Store
		redisClient *redis.Client
	)
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		redisClient, err = session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL, appLogger)
		zap.L().Info("Redis session store ready", zap.String("addr", cfg.RedisAddr))
	default:
		sessions = session.NewMemoryStore(cfg.SessionTTL, appLogger)
	}

	// --- AI collaborators ---
	textGen, err := ai.NewTextGenerator(ctx, cfg, appLogger)
	if err != nil {
		zap.L().Fatal("Failed to create text generator", zap.Error(err))
	}
	imageGen, err := ai.NewImageGenerator(ctx, cfg, appLogger)
	if err != nil {
		zap.L().Fatal("Failed to create image generator", zap.Error(err))
	}
	limiter := ai.NewLimiter(cfg.AIRatePerMinute, cfg.AIRateBurst)
	textGen = ai.WithTextLimit(textGen, limiter)
	imageGen = ai.WithImageLimit(imageGen, limiter)

	if err := textGen.Available(); err != nil {
		zap.L().Warn("Text generation disabled until configured", zap.Error(err))
	}
	if err := imageGen.Available(); err != nil {
		zap.L().Warn("Image generation disabled until configured", zap.Error(err))
	}

	// --- Dependency Injection ---
	assembler := prompt.NewAssembler()
	utopiaSvc := service.NewUtopiaService(assembler, textGen, imageGen, sessions, cfg.AITimeout, appLogger)
	utopiaHandler := handler.NewUtopiaHandler(utopiaSvc, defaultLocale, appLogger)

	// --- HTTP ---
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	p := ginprometheus.NewPrometheus("gin")

	var generationMiddleware []gin.HandlerFunc
	if cfg.ClientRatePerMinute > 0 {
		store := middleware.NewClientRateLimitStore(redisClient, cfg.ClientRatePerMinute)
		generationMiddleware = append(generationMiddleware, middleware.ClientRateLimit(store, appLogger))
		zap.L().Info("Client rate limiter initialized", zap.Uint("per_minute", cfg.ClientRatePerMinute))
	}

	router := handler.NewRouter(utopiaHandler, handler.RouterConfig{
		AllowedOrigins:       cfg.AllowedOrigins(),
		Metrics:              p,
		GenerationMiddleware: generationMiddleware,
	}, appLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		// Generation calls wait for the provider.
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}
	cancel()

	zap.L().Info("Server exiting")
}
