package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"flysolo/internal/auth"
	"flysolo/internal/handler"
	"flysolo/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler   *handler.AuthHandler
	PlanetHandler *handler.PlanetHandler
	TripHandler   *handler.TripHandler
	TokenManager  *auth.TokenManager
	RateLimiter   *middleware.RateLimiter
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(deps.TokenManager)

	// Auth routes.
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", deps.AuthHandler.Register)
		authGroup.POST("/login", deps.AuthHandler.Login)
		authGroup.GET("/me", authRequired, deps.AuthHandler.Me)
	}

	// Planet catalog.
	router.GET("/planets", authRequired, deps.PlanetHandler.GetAll)

	// Trip routes.
	trips := router.Group("/trips", authRequired)
	{
		trips.POST("", deps.TripHandler.CreateTrip)
		trips.GET("", deps.TripHandler.GetAll)
		trips.GET("/available", deps.TripHandler.GetAvailable)
		trips.GET("/my-trips", deps.TripHandler.GetMyTrips)
		trips.GET("/:id", deps.TripHandler.GetTrip)
		trips.POST("/:id/assign", deps.TripHandler.AssignPilot)
		trips.PATCH("/:id/status", deps.TripHandler.UpdateStatus)
	}

	return router
}
