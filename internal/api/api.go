package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wastewise/backend/internal/middleware"
	"github.com/wastewise/backend/internal/sensor"
	"github.com/wastewise/backend/internal/service"
)

// SetupAPI wires services and handlers onto the /api/v1 group. redisClient
// may be nil; caching and rate limiting are then disabled.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, jwtSecret, sensorBaseURL string) {
	authService := service.NewAuthService(db, jwtSecret)
	analysisService := service.NewAnalysisService(db, redisClient)
	entryService := service.NewFoodEntryService(db, analysisService)
	bookingService := service.NewBookingService(db)
	sensorClient := sensor.New(sensorBaseURL)

	authHandler := NewAuthHandler(authService)
	entryHandler := NewFoodEntryHandler(entryService)
	bookingHandler := NewBookingHandler(bookingService)
	analysisHandler := NewAnalysisHandler(analysisService)
	sensorHandler := NewSensorHandler(sensorClient)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
		protected.Use(limiter.Middleware())
	}

	entryHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	analysisHandler.RegisterRoutes(protected)
	sensorHandler.RegisterRoutes(protected)
}
