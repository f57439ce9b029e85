package http

import (
	"github.com/gin-gonic/gin"

	"github.com/goldior/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Chatbot recommendation endpoint
		v1.POST("/chatbot", handler.RecommendChat)

		// Auth endpoints
		auth := v1.Group("/auth")
		{
			auth.POST("/otp/:email", handler.SendOTP)
			auth.POST("/otp/:email/verify", handler.VerifyOTP)
			auth.POST("/users", handler.CreateUser)
			auth.GET("/users/:email", handler.GetUserByEmail)
		}
	}

	return router
}
