package handler

import (
	"net/http"
	"time"

	"alltopia/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

// defaultAllowedOrigin is used when no CORS origins are configured.
const defaultAllowedOrigin = "http://localhost:3000"

// RouterConfig holds what NewRouter needs besides the handler.
type RouterConfig struct {
	AllowedOrigins []string
	// Metrics, when set, instruments every route and serves /metrics.
	Metrics *ginprometheus.Prometheus
	// GenerationMiddleware runs in front of the endpoints that call an AI provider.
	GenerationMiddleware []gin.HandlerFunc
}

// NewRouter builds the engine with logging, recovery, metrics, CORS, health and the API.
// gin copies engine middleware into a route when the route is registered, so everything
// passed to router.Use must be in place before the first route.
func NewRouter(h *UtopiaHandler, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ZapLoggingMiddlewareForGin(logger))
	router.Use(gin.Recovery())

	if cfg.Metrics != nil {
		cfg.Metrics.Use(router)
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		logger.Warn("CORS_ALLOWED_ORIGINS not set, allowing only " + defaultAllowedOrigin)
		corsConfig.AllowOrigins = []string{defaultAllowedOrigin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, SessionIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, SessionIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	h.RegisterRoutes(router, cfg.GenerationMiddleware...)
	return router
}
